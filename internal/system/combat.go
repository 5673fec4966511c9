package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"

	"go.uber.org/zap"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, log *zap.Logger) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *CombatSystem) Phase() Phase { return PhaseFire }

// Update стреляет только на тиках, кратных каденции стрельбы.
func (s *CombatSystem) Update(tick uint64) {
	if s.world.Counters.Fire%s.world.Balance.Cadence.Fire != 0 {
		return
	}
	hits := s.Shell()
	if hits > 0 {
		s.log.Debug("towers fired", zap.Uint64("tick", tick), zap.Int("hits", hits))
	}
}

// Shell — один залп: каждая башня бьёт первого живого врага в радиусе.
// Башни обходятся по типам в порядке defs.TowerKinds, внутри типа — в порядке
// постройки; враги — в порядке появления на поле. Возвращает число попаданий.
func (s *CombatSystem) Shell() int {
	hits := 0
	for _, kind := range defs.TowerKinds {
		slots := s.world.Attacks[kind]
		for i, tower := range s.world.Towers[kind] {
			target := s.findFirstEnemyInRange(tower)
			if target == nil {
				continue
			}
			slots[i] = component.AttackEvent{
				Target: target.Position,
				Source: tower.Position(),
				Active: true,
			}
			if ApplyDamage(s.eventDispatcher, target, tower.MakeDamage()) {
				s.log.Debug("enemy killed",
					zap.Uint64("enemy", uint64(target.ID)),
					zap.Uint64("tower", uint64(tower.ID)),
					zap.String("kind", string(kind)))
			}
			hits++
		}
	}
	return hits
}

func (s *CombatSystem) findFirstEnemyInRange(tower *component.Tower) *component.Unit {
	for _, enemy := range s.world.Enemies {
		if !enemy.IsAlive() {
			continue
		}
		if tower.InRange(enemy.Position) {
			return enemy
		}
	}
	return nil
}
