package system

import (
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"

	"go.uber.org/zap"
)

func TestShellHitsEnemyInRange(t *testing.T) {
	w := newTestWorld(t, nil)
	tower := addTower(w, defs.TowerArcher, types.Point{X: 5, Y: 5}, 1)
	enemy := addEnemy(w, types.Point{X: 5, Y: 12}, 1)

	s := NewCombatSystem(w, event.NewDispatcher(), zap.NewNop())
	if hits := s.Shell(); hits != 1 {
		t.Fatalf("expected 1 hit, got %d", hits)
	}
	if enemy.Health != 80 {
		t.Errorf("expected health 80 after 20 damage, got %d", enemy.Health)
	}
	want := component.AttackEvent{Target: types.Point{X: 5, Y: 12}, Source: tower.Position(), Active: true}
	if got := w.Attacks[defs.TowerArcher][0]; got != want {
		t.Errorf("attack event: expected %+v, got %+v", want, got)
	}
}

func TestShellBoundaryIsInclusive(t *testing.T) {
	w := newTestWorld(t, nil)
	addTower(w, defs.TowerArcher, types.Point{X: 0, Y: 0}, 1)
	enemy := addEnemy(w, types.Point{X: 6, Y: 8}, 1) // ровно 10

	NewCombatSystem(w, nil, zap.NewNop()).Shell()
	if enemy.Health != 80 {
		t.Errorf("enemy exactly at range should be hit, health %d", enemy.Health)
	}
}

func TestShellFirstInsertedEnemyWins(t *testing.T) {
	w := newTestWorld(t, nil)
	addTower(w, defs.TowerWizard, types.Point{X: 5, Y: 5}, 1)
	first := addEnemy(w, types.Point{X: 5, Y: 14}, 1)  // дальше, но раньше в списке
	second := addEnemy(w, types.Point{X: 5, Y: 6}, 1) // ближе

	NewCombatSystem(w, nil, zap.NewNop()).Shell()
	if first.Health != 80 || second.Health != 100 {
		t.Errorf("expected only the first enemy hit: first %d second %d", first.Health, second.Health)
	}
}

func TestShellSkipsDeadEnemies(t *testing.T) {
	w := newTestWorld(t, nil)
	addTower(w, defs.TowerArcher, types.Point{X: 5, Y: 5}, 1)
	addTower(w, defs.TowerArcher, types.Point{X: 6, Y: 5}, 1)
	weak := addEnemy(w, types.Point{X: 5, Y: 7}, 1)
	weak.Health = 15
	next := addEnemy(w, types.Point{X: 5, Y: 8}, 1)

	d := event.NewDispatcher()
	log := recordAll(d)
	NewCombatSystem(w, d, zap.NewNop()).Shell()

	if weak.Health != 0 || weak.IsAlive() {
		t.Fatalf("weak enemy should die, health %d", weak.Health)
	}
	if next.Health != 80 {
		t.Errorf("second tower should skip the dead enemy and hit the next one, health %d", next.Health)
	}
	if log.count(event.EnemyKilled) != 1 {
		t.Errorf("expected one kill event, got %d", log.count(event.EnemyKilled))
	}
	if len(w.Enemies) != 2 {
		t.Errorf("dead enemies stay until sweep, got %d enemies", len(w.Enemies))
	}
}

func TestShellMissKeepsPriorSlot(t *testing.T) {
	w := newTestWorld(t, nil)
	addTower(w, defs.TowerArcher, types.Point{X: 0, Y: 0}, 1)
	far := addEnemy(w, types.Point{X: 40, Y: 40}, 1)
	prior := component.AttackEvent{Target: types.Point{X: 1, Y: 1}, Source: types.Point{X: 0, Y: 0}, Active: true}
	w.Attacks[defs.TowerArcher][0] = prior

	if hits := NewCombatSystem(w, nil, zap.NewNop()).Shell(); hits != 0 {
		t.Fatalf("expected no hits, got %d", hits)
	}
	if far.Health != 100 {
		t.Errorf("out of range enemy damaged: %d", far.Health)
	}
	if w.Attacks[defs.TowerArcher][0] != prior {
		t.Errorf("slot should keep prior value on miss")
	}
}

func TestShellOneEventPerTower(t *testing.T) {
	w := newTestWorld(t, nil)
	addTower(w, defs.TowerArcher, types.Point{X: 3, Y: 3}, 1)
	addTower(w, defs.TowerArcher, types.Point{X: 5, Y: 3}, 2)
	addTower(w, defs.TowerWizard, types.Point{X: 6, Y: 3}, 3)
	for i := 0; i < 5; i++ {
		addEnemy(w, types.Point{X: 4, Y: i}, 1)
	}

	if hits := NewCombatSystem(w, nil, zap.NewNop()).Shell(); hits != 3 {
		t.Fatalf("expected one hit per tower, got %d", hits)
	}
	for _, kind := range defs.TowerKinds {
		if len(w.Attacks[kind]) != len(w.Towers[kind]) {
			t.Errorf("%s: %d slots for %d towers", kind, len(w.Attacks[kind]), len(w.Towers[kind]))
		}
	}
	// все три башни бьют первого врага: 20 + 40 + 60
	if w.Enemies[0].Health != 0 {
		t.Errorf("first enemy should absorb all shots, health %d", w.Enemies[0].Health)
	}
}

func TestCombatUpdateRespectsCadence(t *testing.T) {
	w := newTestWorld(t, nil)
	addTower(w, defs.TowerArcher, types.Point{X: 5, Y: 5}, 1)
	enemy := addEnemy(w, types.Point{X: 5, Y: 6}, 1)
	s := NewCombatSystem(w, nil, zap.NewNop())

	for fire := uint64(1); fire < 5; fire++ {
		w.Counters.Fire = fire
		s.Update(fire)
	}
	if enemy.Health != 100 {
		t.Fatalf("towers fired off cadence, health %d", enemy.Health)
	}
	w.Counters.Fire = 5
	s.Update(5)
	if enemy.Health != 80 {
		t.Errorf("towers should fire on tick 5, health %d", enemy.Health)
	}
}
