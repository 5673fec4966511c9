// internal/system/movement.go
package system

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
)

// MovementSystem двигает живых юнитов по прямой вдоль оси Y.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Phase() Phase { return PhaseMove }

func (s *MovementSystem) Update(tick uint64) {
	for _, unit := range s.world.Enemies {
		if !unit.IsAlive() {
			continue
		}
		step := unit.Step()
		if unit.Direction == defs.AwayFromObjective {
			step = -step
		}
		unit.Move(unit.Position.Add(0, step))
	}
}
