package scripting

import (
	"fmt"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a gopher-lua VM that drives a session from a scenario script.
// Single-goroutine access only.
type Engine struct {
	vm   *lua.LState
	game *app.Game
	log  *zap.Logger
}

// NewEngine creates a Lua VM with the session API registered as globals:
//
//	place_tower(kind, x, y [, level]) -> id | nil, err
//	level_up(id)                      -> true | false, err
//	tick([n])                         -> current tick
//	state()                           -> table
//	tower(id)                         -> table | nil, err
func NewEngine(game *app.Game, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	e := &Engine{vm: vm, game: game, log: log}

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("ARCHER", lua.LString(defs.TowerArcher))
	vm.SetGlobal("WIZARD", lua.LString(defs.TowerWizard))

	vm.Register("place_tower", e.placeTower)
	vm.Register("level_up", e.levelUp)
	vm.Register("tick", e.tick)
	vm.Register("state", e.state)
	vm.Register("tower", e.tower)
	return e
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// RunFile executes a scenario script.
func (e *Engine) RunFile(path string) error {
	e.log.Debug("running lua scenario", zap.String("file", path))
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("run scenario %s: %w", path, err)
	}
	return nil
}

// RunString executes inline Lua source.
func (e *Engine) RunString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}
	return nil
}

func (e *Engine) placeTower(L *lua.LState) int {
	kind := defs.TowerKind(L.CheckString(1))
	pos := types.Point{X: L.CheckInt(2), Y: L.CheckInt(3)}
	level := L.OptInt(4, 1)

	id, err := e.game.PlaceTower(kind, pos, level)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(id))
	return 1
}

func (e *Engine) levelUp(L *lua.LState) int {
	id := types.EntityID(L.CheckInt64(1))
	if err := e.game.LevelUpTower(id); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (e *Engine) tick(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "tick count cannot be negative")
		return 0
	}
	e.game.Advance(n)
	L.Push(lua.LNumber(e.game.CurrentTick()))
	return 1
}

func (e *Engine) state(L *lua.LState) int {
	snap := e.game.Snapshot()
	stats := e.game.Stats()

	t := L.NewTable()
	t.RawSetString("tick", lua.LNumber(snap.Tick))
	t.RawSetString("wave", lua.LNumber(snap.WaveLevel))
	t.RawSetString("pending", lua.LNumber(snap.Pending))
	t.RawSetString("castle", lua.LNumber(snap.Castle.Health))
	t.RawSetString("lost", lua.LBool(e.game.Lost()))
	t.RawSetString("spawned", lua.LNumber(stats.Spawned))
	t.RawSetString("killed", lua.LNumber(stats.Killed))
	t.RawSetString("escaped", lua.LNumber(stats.Escaped))
	t.RawSetString("attacks", lua.LNumber(len(snap.Attacks)))

	enemies := L.NewTable()
	for _, s := range snap.Enemies {
		enemies.Append(spriteTable(L, s))
	}
	t.RawSetString("enemies", enemies)

	towers := L.NewTable()
	for _, s := range snap.Towers {
		towers.Append(spriteTable(L, s))
	}
	t.RawSetString("towers", towers)

	L.Push(t)
	return 1
}

func (e *Engine) tower(L *lua.LState) int {
	info, err := e.game.Tower(types.EntityID(L.CheckInt64(1)))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	t := L.NewTable()
	t.RawSetString("id", lua.LNumber(info.ID))
	t.RawSetString("kind", lua.LString(info.Kind))
	t.RawSetString("x", lua.LNumber(info.Position.X))
	t.RawSetString("y", lua.LNumber(info.Position.Y))
	t.RawSetString("level", lua.LNumber(info.Level))
	t.RawSetString("range", lua.LNumber(info.Range))
	t.RawSetString("force", lua.LNumber(info.Force))
	t.RawSetString("cost", lua.LNumber(info.UpgradeCost))
	L.Push(t)
	return 1
}

func spriteTable(L *lua.LState, s app.Sprite) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LNumber(s.ID))
	t.RawSetString("x", lua.LNumber(s.Position.X))
	t.RawSetString("y", lua.LNumber(s.Position.Y))
	t.RawSetString("level", lua.LNumber(s.Level))
	t.RawSetString("health", lua.LNumber(s.Health))
	t.RawSetString("visual", lua.LString(s.Visual))
	return t
}
