package component

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
)

// Unit — боевая единица: враг (UFO) или воин из казармы.
type Unit struct {
	ID        types.EntityID
	Kind      defs.UnitKind
	Position  types.Point
	Level     int
	Direction defs.Direction
	Health    int
	MaxHealth int
	Velocity  int // клеток за два тика
	Force     int // урон по замку и юнитам
}

// NewUnit создаёт юнита с параметрами, выведенными из уровня.
func NewUnit(id types.EntityID, kind defs.UnitKind, pos types.Point, level int, stats defs.UnitStats) *Unit {
	return &Unit{
		ID:        id,
		Kind:      kind,
		Position:  pos,
		Level:     level,
		Direction: defs.DirectionOf(kind),
		Health:    stats.BaseHealth,
		MaxHealth: stats.BaseHealth,
		Velocity:  level,
		Force:     stats.ForcePerLevel * level,
	}
}

// Move переставляет юнита без проверки границ поля.
func (u *Unit) Move(pos types.Point) {
	u.Position = pos
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
func (u *Unit) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	u.Health -= amount
	if u.Health < 0 {
		u.Health = 0
	}
}

func (u *Unit) IsAlive() bool {
	return u.Health > 0
}

func (u *Unit) MakeDamage() int {
	return u.Force
}

// Step — на сколько клеток юнит продвигается за тик: одна клетка
// плюс ещё одна на каждые два уровня скорости сверх первого.
func (u *Unit) Step() int {
	return (u.Velocity + 1) / 2
}
