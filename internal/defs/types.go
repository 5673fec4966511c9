// internal/defs/types.go
package defs

// UnitKind — вид боевой единицы
type UnitKind string

const (
	UnitUFO     UnitKind = "ufo"     // враг, идёт к замку
	UnitWarrior UnitKind = "warrior" // союзник из казармы, идёт от замка
)

// Direction — направление движения относительно замка
type Direction int

const (
	TowardObjective Direction = iota
	AwayFromObjective
)

// DirectionOf возвращает направление движения для вида юнита.
func DirectionOf(kind UnitKind) Direction {
	if kind == UnitWarrior {
		return AwayFromObjective
	}
	return TowardObjective
}

// TowerKind — тип башни
type TowerKind string

const (
	TowerArcher TowerKind = "archer"
	TowerWizard TowerKind = "wizard"
)

// TowerKinds задаёт порядок обхода башен при стрельбе и отрисовке.
var TowerKinds = []TowerKind{TowerArcher, TowerWizard}

// Valid сообщает, известен ли тип башни.
func (k TowerKind) Valid() bool {
	for _, known := range TowerKinds {
		if k == known {
			return true
		}
	}
	return false
}

// TileKind — категория клетки ландшафта
type TileKind string

const (
	TileLandscape TileKind = "landscape"
	TileRoad      TileKind = "road"
	TileDecor     TileKind = "decor"
)

// Biome — биом карты
type Biome string

const (
	BiomeSpring Biome = "spring"
	BiomeWinter Biome = "winter"
	BiomeDesert Biome = "desert"
)

// Valid сообщает, известен ли биом.
func (b Biome) Valid() bool {
	switch b {
	case BiomeSpring, BiomeWinter, BiomeDesert:
		return true
	}
	return false
}
