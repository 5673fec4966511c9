package system

import (
	"sort"

	"go-castle-defense/internal/entity"
)

// Runner executes systems in phase order each tick.
type Runner struct {
	world   *entity.World
	systems []System
	sorted  bool
}

func NewRunner(world *entity.World) *Runner {
	return &Runner{
		world:   world,
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick прогоняет все системы, затем сдвигает счётчики каденций и номер тика.
func (r *Runner) Tick() {
	r.ensureSorted()
	tick := r.world.Tick
	for _, s := range r.systems {
		s.Update(tick)
	}
	r.world.Counters.Advance()
	r.world.Tick++
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
