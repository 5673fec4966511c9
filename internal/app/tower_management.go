// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"

	"go.uber.org/zap"
)

// PlaceTower attempts to place a tower of the given kind and level at pos.
// On error the session state is unchanged.
func (g *Game) PlaceTower(kind defs.TowerKind, pos types.Point, level int) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats, err := g.canPlaceTower(kind, pos, level)
	if err != nil {
		g.log.Warn("tower placement rejected", zap.String("kind", string(kind)), zap.Stringer("pos", pos), zap.Error(err))
		return 0, err
	}

	tower := component.NewTower(g.World.NewEntity(), kind, pos, level, stats)
	g.World.AddTower(tower)

	g.log.Debug("tower placed", zap.Uint64("id", uint64(tower.ID)), zap.String("kind", string(kind)), zap.Stringer("pos", pos), zap.Int("level", level))
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: towerData(tower)})
	return tower.ID, nil
}

// LevelUpTower raises the level of the tower with the given id.
func (g *Game) LevelUpTower(id types.EntityID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	tower, ok := g.World.TowerByID(id)
	if !ok {
		err := fmt.Errorf("%w: tower %d", ErrUnknownEntity, id)
		g.log.Warn("level up rejected", zap.Error(err))
		return err
	}
	if !tower.LevelUp() {
		return fmt.Errorf("%w: tower %d is level %d", ErrMaxLevel, id, tower.Level)
	}

	g.log.Debug("tower upgraded", zap.Uint64("id", uint64(id)), zap.Int("level", tower.Level))
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: towerData(tower)})
	return nil
}

// TowerInfo — копия параметров башни для чтения снаружи.
type TowerInfo struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Position    types.Point
	Level       int
	Range       int
	Force       int
	UpgradeCost int
	MaxLevel    int
}

// Tower возвращает параметры башни по идентификатору.
func (g *Game) Tower(id types.EntityID) (TowerInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tower, ok := g.World.TowerByID(id)
	if !ok {
		return TowerInfo{}, fmt.Errorf("%w: tower %d", ErrUnknownEntity, id)
	}
	return towerInfo(tower), nil
}

// TowerAt возвращает башню, стоящую на клетке.
func (g *Game) TowerAt(pos types.Point) (TowerInfo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tower, ok := g.World.TowerAt(pos)
	if !ok {
		return TowerInfo{}, false
	}
	return towerInfo(tower), true
}

func (g *Game) canPlaceTower(kind defs.TowerKind, pos types.Point, level int) (defs.TowerStats, error) {
	stats, ok := g.World.Balance.TowerStatsFor(kind)
	if !ok || !kind.Valid() {
		return stats, fmt.Errorf("%w: unknown tower kind %q", ErrInvalidPlacement, kind)
	}
	if level < 1 || level > stats.MaxLevel {
		return stats, fmt.Errorf("%w: level %d outside 1..%d", ErrInvalidPlacement, level, stats.MaxLevel)
	}
	tile, ok := g.World.TileAt(pos)
	if !ok {
		return stats, fmt.Errorf("%w: %v is off the board", ErrInvalidPlacement, pos)
	}
	if !tile.TowerPlace {
		return stats, fmt.Errorf("%w: %s tile at %v is not a building place", ErrInvalidPlacement, tile.Kind, pos)
	}
	if _, occupied := g.World.TowerAt(pos); occupied {
		return stats, fmt.Errorf("%w: %v is occupied", ErrInvalidPlacement, pos)
	}
	return stats, nil
}

func towerInfo(t *component.Tower) TowerInfo {
	return TowerInfo{
		ID:          t.ID,
		Kind:        t.Kind,
		Position:    t.Position(),
		Level:       t.Level,
		Range:       t.Range,
		Force:       t.Force,
		UpgradeCost: t.UpgradeCost,
		MaxLevel:    t.MaxLevel(),
	}
}

func towerData(t *component.Tower) event.TowerData {
	return event.TowerData{ID: t.ID, Kind: t.Kind, Position: t.Position(), Level: t.Level}
}
