package system

import (
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"
	"go-castle-defense/internal/utils"

	"go.uber.org/zap"
)

type probe struct {
	phase Phase
	trace *[]Phase
}

func (p probe) Phase() Phase       { return p.phase }
func (p probe) Update(tick uint64) { *p.trace = append(*p.trace, p.phase) }

func TestRunnerOrdersByPhase(t *testing.T) {
	w := newTestWorld(t, nil)
	var trace []Phase
	r := NewRunner(w)
	for _, ph := range []Phase{PhaseSweep, PhaseFire, PhaseSpawn, PhaseMove, PhaseWave, PhaseDecay} {
		r.Register(probe{phase: ph, trace: &trace})
	}
	r.Tick()
	for i, ph := range trace {
		if ph != Phase(i) {
			t.Fatalf("phase order %v", trace)
		}
	}
	if w.Tick != 1 || w.Counters.Fire != 1 || w.Counters.Spawn != 1 {
		t.Errorf("counters should advance once per tick: tick %d %+v", w.Tick, w.Counters)
	}
}

func newPipeline(t *testing.T, w *entity.World, d *event.Dispatcher) *Runner {
	t.Helper()
	log := zap.NewNop()
	r := NewRunner(w)
	r.Register(NewCleanupSystem(w, d, log))
	r.Register(NewSpawnSystem(w, d, log))
	r.Register(NewWaveSystem(w, utils.NewPRNGService(5), d, log))
	r.Register(NewDecaySystem(w))
	r.Register(NewCombatSystem(w, d, log))
	r.Register(NewMovementSystem(w))
	return r
}

func TestFirstTickGeneratesAndReleases(t *testing.T) {
	w := newTestWorld(t, nil)
	d := event.NewDispatcher()
	log := recordAll(d)
	newPipeline(t, w, d).Tick()

	if log.count(event.WaveGenerated) != 1 || w.WaveLevel != 2 {
		t.Fatalf("tick 0 should generate wave 1, level now %d", w.WaveLevel)
	}
	if len(w.Enemies) != 1 || w.Queue.Len() != 3 {
		t.Fatalf("tick 0 should release one enemy: %d enemies, %d pending", len(w.Enemies), w.Queue.Len())
	}
	if w.Enemies[0].Position != w.Balance.Waves.Spawn {
		t.Errorf("released enemy moved on its spawn tick: %v", w.Enemies[0].Position)
	}
}

func TestEnemyLeavesBoardAndHitsCastle(t *testing.T) {
	w := newTestWorld(t, func(b *defs.Balance) { b.Cadence.Wave = 1 << 20 })
	d := event.NewDispatcher()
	log := recordAll(d)
	r := newPipeline(t, w, d)
	r.Tick() // волна 1: четыре врага уровня 1

	for i := 0; i < 40; i++ {
		r.Tick()
	}
	if len(w.Enemies) != 0 || w.Queue.Len() != 0 {
		t.Fatalf("without towers every enemy should leave: %d live, %d pending", len(w.Enemies), w.Queue.Len())
	}
	if log.count(event.EnemyEscaped) != 4 {
		t.Errorf("expected 4 escapes, got %d", log.count(event.EnemyEscaped))
	}
	if w.Castle.Health != w.Castle.MaxHealth-4*20 {
		t.Errorf("castle should lose 80, has %d", w.Castle.Health)
	}
}

func countActive(w *entity.World) int {
	active := 0
	for _, slots := range w.Attacks {
		for _, a := range slots {
			if a.Active {
				active++
			}
		}
	}
	return active
}

func TestAttackBuffersAfterFireAndDecay(t *testing.T) {
	w := newTestWorld(t, func(b *defs.Balance) {
		b.Cadence.Wave = 1 << 20
		b.Cadence.Fire = 2
		b.Cadence.Decay = 3
	})
	addTower(w, defs.TowerArcher, types.Point{X: 3, Y: 1}, 1)
	addTower(w, defs.TowerWizard, types.Point{X: 5, Y: 1}, 1)
	r := newPipeline(t, w, nil)

	r.Tick() // tick 0: волна и первый враг в точке появления
	r.Tick() // tick 1: ни выстрела, ни очистки
	if countActive(w) != 0 {
		t.Fatalf("no fire tick yet, got %d events", countActive(w))
	}
	r.Tick() // tick 2: выстрел обеих башен
	if got := countActive(w); got != 2 {
		t.Fatalf("after a fire tick each tower holds one event, got %d", got)
	}
	if hp := w.Enemies[0].Health; hp != 60 {
		t.Errorf("both towers should hit the only enemy, health %d", hp)
	}
	r.Tick() // tick 3: очистка
	for kind, slots := range w.Attacks {
		for i, a := range slots {
			if a != (component.AttackEvent{}) {
				t.Errorf("%s slot %d not cleared after decay: %+v", kind, i, a)
			}
		}
	}
}
