package defs

import (
	"fmt"

	"go-castle-defense/pkg/utils"
)

// VisualID — символьный идентификатор спрайта. Рендерер сам решает,
// какую картинку или символ ему сопоставить.
type VisualID string

// Количество уровней скинов для каждого вида.
var unitSkinLevels = map[UnitKind]int{
	UnitUFO:     7,
	UnitWarrior: 3,
}

const towerSkinLevels = 3

var landscapeNames = map[Biome][2]string{
	BiomeSpring: {"grass", "building_place_grass"},
	BiomeWinter: {"snow", "building_place_snow"},
	BiomeDesert: {"sand", "building_place_sand"},
}

// clampSkin приводит уровень к диапазону доступных скинов [1, max].
func clampSkin(level, max int) int {
	return utils.Clamp(level, 1, max)
}

// UnitVisual возвращает спрайт юнита, например "ufo_3".
func UnitVisual(kind UnitKind, level int) VisualID {
	max, ok := unitSkinLevels[kind]
	if !ok {
		max = 1
	}
	return VisualID(fmt.Sprintf("%s_%d", kind, clampSkin(level, max)))
}

// TowerVisual возвращает спрайт башни, например "archer_2".
func TowerVisual(kind TowerKind, level int) VisualID {
	return VisualID(fmt.Sprintf("%s_%d", kind, clampSkin(level, towerSkinLevels)))
}

// TileVisual возвращает спрайт клетки для её категории, биома и варианта.
func TileVisual(kind TileKind, biome Biome, variant string, towerPlace bool) VisualID {
	switch kind {
	case TileRoad:
		return VisualID(fmt.Sprintf("road_%s_%s", biome, variant))
	case TileDecor:
		return VisualID("crystal_1")
	default:
		names, ok := landscapeNames[biome]
		if !ok {
			names = landscapeNames[BiomeSpring]
		}
		if towerPlace {
			return VisualID(names[1])
		}
		return VisualID(names[0])
	}
}
