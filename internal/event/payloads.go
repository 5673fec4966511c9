package event

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
)

// TowerData — данные событий башни.
type TowerData struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	Position types.Point
	Level    int
}

// UnitData — данные событий юнита.
type UnitData struct {
	ID       types.EntityID
	Level    int
	Position types.Point
	Force    int
}

// WaveData — данные сгенерированной волны.
type WaveData struct {
	Level  int
	Levels []int
}
