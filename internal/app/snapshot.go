package app

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/types"
)

// Sprite — что и где рисовать.
type Sprite struct {
	ID        types.EntityID
	Position  types.Point
	Visual    defs.VisualID
	Level     int
	Health    int
	MaxHealth int
}

// Snapshot captures the state exposed to renderers. Берётся между тиками
// и не разделяет памяти с симуляцией.
type Snapshot struct {
	Tick      uint64
	WaveLevel int
	Pending   int
	Width     int
	Height    int
	Castle    entity.Castle
	Tiles     []Sprite
	Enemies   []Sprite
	Towers    []Sprite
	Attacks   []component.Segment
}

// Snapshot returns a copy of the board for the rendering collaborator.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.World
	snap := Snapshot{
		Tick:      w.Tick,
		WaveLevel: w.WaveLevel,
		Pending:   w.Queue.Len(),
		Width:     w.Width(),
		Height:    w.Height(),
		Castle:    w.Castle,
		Tiles:     make([]Sprite, 0, len(w.Tiles)),
		Enemies:   make([]Sprite, 0, len(w.Enemies)),
		Towers:    make([]Sprite, 0, w.TowerCount()),
	}
	for _, tile := range w.Tiles {
		snap.Tiles = append(snap.Tiles, Sprite{Position: tile.Position, Visual: tile.Visual()})
	}
	for _, u := range w.Enemies {
		if !u.IsAlive() {
			continue
		}
		snap.Enemies = append(snap.Enemies, Sprite{
			ID:        u.ID,
			Position:  u.Position,
			Visual:    defs.UnitVisual(u.Kind, u.Level),
			Level:     u.Level,
			Health:    u.Health,
			MaxHealth: u.MaxHealth,
		})
	}
	for _, kind := range defs.TowerKinds {
		for _, t := range w.Towers[kind] {
			snap.Towers = append(snap.Towers, Sprite{
				ID:       t.ID,
				Position: t.Position(),
				Visual:   defs.TowerVisual(t.Kind, t.Level),
				Level:    t.Level,
			})
		}
		for _, a := range w.Attacks[kind] {
			if a.Active {
				snap.Attacks = append(snap.Attacks, a.Segment())
			}
		}
	}
	return snap
}
