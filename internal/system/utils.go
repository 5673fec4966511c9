package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/event"
)

// ApplyDamage наносит урон юниту и сообщает о гибели.
// Из коллекции мёртвый юнит убирает только CleanupSystem.
func ApplyDamage(dispatcher *event.Dispatcher, unit *component.Unit, damage int) bool {
	if !unit.IsAlive() {
		return false
	}
	unit.TakeDamage(damage)
	if unit.IsAlive() {
		return false
	}
	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: unitData(unit)})
	}
	return true
}

func unitData(u *component.Unit) event.UnitData {
	return event.UnitData{ID: u.ID, Level: u.Level, Position: u.Position, Force: u.Force}
}
