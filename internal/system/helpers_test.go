package system

import (
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"
)

// newTestWorld создаёт мир с эталонным балансом; tweak может его подправить.
func newTestWorld(t *testing.T, tweak func(b *defs.Balance)) *entity.World {
	t.Helper()
	b := defs.DefaultBalance()
	if tweak != nil {
		tweak(b)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("invalid test balance: %v", err)
	}
	return entity.NewWorld(b)
}

func addEnemy(w *entity.World, pos types.Point, level int) *component.Unit {
	u := component.NewUnit(w.NewEntity(), defs.UnitUFO, pos, level, w.Balance.Units)
	w.AddEnemy(u)
	return u
}

func addTower(w *entity.World, kind defs.TowerKind, pos types.Point, level int) *component.Tower {
	stats, _ := w.Balance.TowerStatsFor(kind)
	tw := component.NewTower(w.NewEntity(), kind, pos, level, stats)
	w.AddTower(tw)
	return tw
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func recordAll(d *event.Dispatcher) *eventLog {
	l := &eventLog{}
	for _, t := range []event.EventType{
		event.WaveGenerated, event.EnemySpawned, event.EnemyKilled,
		event.EnemyEscaped, event.CastleFallen,
	} {
		d.Subscribe(t, l)
	}
	return l
}
