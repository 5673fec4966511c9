package scripting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/types"
)

func newTestEngine(t *testing.T) (*Engine, *app.Game) {
	t.Helper()
	g := app.NewGame(nil, app.WithSeed(3))
	e := NewEngine(g, nil)
	t.Cleanup(e.Close)
	return e, g
}

func TestPlaceAndUpgradeFromLua(t *testing.T) {
	e, g := newTestEngine(t)
	err := e.RunString(`
		local id = assert(place_tower(ARCHER, 3, 1, 1))
		assert(level_up(id))
		assert(level_up(id))
		local ok, err = level_up(id)
		assert(not ok and string.find(err, "max level"), "expected max level error")
		local t = tower(id)
		assert(t.level == 3 and t.range == 30, "unexpected tower " .. t.level)

		local bad, msg = place_tower(WIZARD, 4, 0)
		assert(bad == nil and msg ~= nil, "road placement should fail")
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	info, ok := g.TowerAt(types.Point{X: 3, Y: 1})
	if !ok || info.Level != 3 {
		t.Errorf("expected level 3 archer at (3,1), got %+v (found %v)", info, ok)
	}
}

func TestTickAndState(t *testing.T) {
	e, g := newTestEngine(t)
	err := e.RunString(`
		local now = tick(10)
		assert(now == 10, "tick returned " .. now)
		local s = state()
		assert(s.tick == 10)
		assert(s.wave == 2)
		assert(#s.enemies == 4, "enemies " .. #s.enemies)
		assert(s.enemies[1].visual == "ufo_1")
		assert(s.castle == 1000)
		assert(not s.lost)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if g.CurrentTick() != 10 {
		t.Errorf("expected tick 10, got %d", g.CurrentTick())
	}
}

func TestScriptErrors(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.RunString(`error("boom")`); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected script error, got %v", err)
	}
	if err := e.RunString(`tick(-1)`); err == nil {
		t.Error("expected error for negative tick count")
	}
	if err := e.RunFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunFile(t *testing.T) {
	e, g := newTestEngine(t)
	path := filepath.Join(t.TempDir(), "scenario.lua")
	src := "for x = 2, 6 do\n  if x ~= 4 then place_tower(ARCHER, x, 0) end\nend\ntick(3)\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := e.RunFile(path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if n := len(g.Snapshot().Towers); n != 4 {
		t.Errorf("expected 4 towers, got %d", n)
	}
}

func TestDemoScenario(t *testing.T) {
	e, g := newTestEngine(t)
	if err := e.RunFile(filepath.Join("..", "..", "scripts", "demo.lua")); err != nil {
		t.Fatalf("demo scenario: %v", err)
	}
	if g.CurrentTick() == 0 || len(g.Snapshot().Towers) != 2 {
		t.Errorf("demo should place two towers and advance the clock")
	}
}
