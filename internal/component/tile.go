package component

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
)

// Tile — статическая клетка поля. Не меняется после генерации карты.
type Tile struct {
	Position   types.Point
	Kind       defs.TileKind
	Biome      defs.Biome
	Variant    string // для дороги: "vertical", "left", "right_twist"...
	TowerPlace bool   // можно ли строить башню
}

func (t Tile) Visual() defs.VisualID {
	return defs.TileVisual(t.Kind, t.Biome, t.Variant, t.TowerPlace)
}
