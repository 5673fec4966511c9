package system

import "go-castle-defense/internal/entity"

// DecaySystem гасит линии атак на своей каденции, независимо от стрельбы.
type DecaySystem struct {
	world *entity.World
}

func NewDecaySystem(world *entity.World) *DecaySystem {
	return &DecaySystem{world: world}
}

func (s *DecaySystem) Phase() Phase { return PhaseDecay }

func (s *DecaySystem) Update(tick uint64) {
	if s.world.Counters.Decay%s.world.Balance.Cadence.Decay == 0 {
		s.world.ClearAttacks()
	}
}
