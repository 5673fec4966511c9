// component/tower.go
package component

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
	"go-castle-defense/pkg/utils"
)

// Tower — стационарная башня. Позиция задаётся при постройке и больше не меняется.
type Tower struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Level       int
	Range       int // радиус действия в клетках
	Force       int // урон за выстрел
	UpgradeCost int
	position    types.Point
	stats       defs.TowerStats
}

// NewTower создаёт башню; уровень приводится к диапазону [1, stats.MaxLevel].
func NewTower(id types.EntityID, kind defs.TowerKind, pos types.Point, level int, stats defs.TowerStats) *Tower {
	t := &Tower{
		ID:       id,
		Kind:     kind,
		Level:    utils.Clamp(level, 1, stats.MaxLevel),
		position: pos,
		stats:    stats,
	}
	t.recompute()
	return t
}

func (t *Tower) Position() types.Point {
	return t.position
}

func (t *Tower) MaxLevel() int {
	return t.stats.MaxLevel
}

// recompute пересчитывает все производные параметры от уровня разом.
func (t *Tower) recompute() {
	t.Range = t.stats.RangePerLevel * t.Level
	t.Force = t.stats.DamagePerLevel * t.Level
	t.UpgradeCost = t.stats.CostPerLevel * t.Level
}

// LevelUp повышает уровень. Возвращает false, если башня уже максимального уровня.
func (t *Tower) LevelUp() bool {
	if t.Level >= t.stats.MaxLevel {
		return false
	}
	t.Level++
	t.recompute()
	return true
}

// InRange — true, если клетка не дальше радиуса (граница включительно).
func (t *Tower) InRange(p types.Point) bool {
	return t.position.Distance(p) <= float64(t.Range)
}

func (t *Tower) MakeDamage() int {
	return t.Force
}
