package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"

	"go.uber.org/zap"
)

// CleanupSystem убирает мёртвых и вышедших за поле юнитов, сохраняя порядок
// остальных. Живой враг, ушедший за нижний край, бьёт по замку.
type CleanupSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewCleanupSystem(world *entity.World, eventDispatcher *event.Dispatcher, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *CleanupSystem) Phase() Phase { return PhaseSweep }

func (s *CleanupSystem) Update(tick uint64) {
	width, height := s.world.Width(), s.world.Height()
	standing := !s.world.Castle.Fallen()

	enemies := s.world.Enemies
	kept := enemies[:0]
	for _, unit := range enemies {
		switch {
		case !unit.IsAlive():
		case !unit.Position.Within(width, height):
			if unit.Direction == defs.TowardObjective && unit.Position.Y >= height {
				s.escape(unit, tick)
			}
		default:
			kept = append(kept, unit)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	s.world.Enemies = kept

	if standing && s.world.Castle.Fallen() {
		s.log.Info("castle fallen", zap.Uint64("tick", tick), zap.Int("wave", s.world.WaveLevel))
		if s.eventDispatcher != nil {
			s.eventDispatcher.Dispatch(event.Event{Type: event.CastleFallen})
		}
	}
}

func (s *CleanupSystem) escape(unit *component.Unit, tick uint64) {
	s.world.Castle.TakeDamage(unit.MakeDamage())
	s.log.Debug("enemy reached the castle",
		zap.Uint64("tick", tick),
		zap.Uint64("enemy", uint64(unit.ID)),
		zap.Int("castle", s.world.Castle.Health))
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: unitData(unit)})
	}
}
