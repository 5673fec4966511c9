// internal/entity/world.go
package entity

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
)

// Counters — счётчики каденций. Каждый увеличивается ровно один раз за тик
// и никогда не сбрасывается.
type Counters struct {
	Fire  uint64
	Decay uint64
	Wave  uint64
	Spawn uint64
}

// Advance сдвигает все счётчики на один тик.
func (c *Counters) Advance() {
	c.Fire++
	c.Decay++
	c.Wave++
	c.Spawn++
}

// Castle — защищаемый замок.
type Castle struct {
	Position  types.Point
	Health    int
	MaxHealth int
}

// TakeDamage уменьшает прочность замка, не опуская её ниже нуля.
func (c *Castle) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

func (c *Castle) Fallen() bool {
	return c.Health == 0
}

// World владеет всеми живыми коллекциями поля. Порядок срезов — порядок
// вставки, от него зависит выбор цели.
type World struct {
	Tick      uint64
	NextID    types.EntityID
	Balance   *defs.Balance
	Enemies   []*component.Unit
	Towers    map[defs.TowerKind][]*component.Tower
	Attacks   map[defs.TowerKind][]component.AttackEvent // слот i принадлежит Towers[kind][i]
	Tiles     []component.Tile
	Queue     *WaveQueue
	WaveLevel int
	Counters  Counters
	Castle    Castle

	tileIndex  map[types.Point]int
	towerIndex map[types.EntityID]*component.Tower
}

// NewWorld создаёт пустой мир и раскладывает поле.
func NewWorld(balance *defs.Balance) *World {
	w := &World{
		NextID:     1,
		Balance:    balance,
		Enemies:    make([]*component.Unit, 0, 64),
		Towers:     make(map[defs.TowerKind][]*component.Tower),
		Attacks:    make(map[defs.TowerKind][]component.AttackEvent),
		Queue:      NewWaveQueue(),
		WaveLevel:  balance.Waves.FirstLevel,
		tileIndex:  make(map[types.Point]int),
		towerIndex: make(map[types.EntityID]*component.Tower),
		Castle: Castle{
			Position:  balance.Castle.Position,
			Health:    balance.Castle.Health,
			MaxHealth: balance.Castle.Health,
		},
	}
	w.Tiles = GenerateBoard(balance.Board)
	for i, tile := range w.Tiles {
		w.tileIndex[tile.Position] = i
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Width и Height — границы поля.
func (w *World) Width() int  { return w.Balance.Board.Width }
func (w *World) Height() int { return w.Balance.Board.Height }

// TileAt возвращает клетку по координате.
func (w *World) TileAt(p types.Point) (component.Tile, bool) {
	i, ok := w.tileIndex[p]
	if !ok {
		return component.Tile{}, false
	}
	return w.Tiles[i], true
}

// AddEnemy добавляет врага в конец списка.
func (w *World) AddEnemy(u *component.Unit) {
	w.Enemies = append(w.Enemies, u)
}

// AddTower регистрирует башню и выделяет ей слот атаки.
func (w *World) AddTower(t *component.Tower) {
	w.Towers[t.Kind] = append(w.Towers[t.Kind], t)
	w.Attacks[t.Kind] = append(w.Attacks[t.Kind], component.AttackEvent{})
	w.towerIndex[t.ID] = t
}

// TowerByID ищет башню по идентификатору.
func (w *World) TowerByID(id types.EntityID) (*component.Tower, bool) {
	t, ok := w.towerIndex[id]
	return t, ok
}

// TowerAt ищет башню, стоящую на клетке.
func (w *World) TowerAt(p types.Point) (*component.Tower, bool) {
	for _, kind := range defs.TowerKinds {
		for _, t := range w.Towers[kind] {
			if t.Position() == p {
				return t, true
			}
		}
	}
	return nil, false
}

// TowerCount — общее число башен.
func (w *World) TowerCount() int {
	return len(w.towerIndex)
}

// ClearAttacks обнуляет все слоты атак.
func (w *World) ClearAttacks() {
	for _, slots := range w.Attacks {
		for i := range slots {
			slots[i] = component.AttackEvent{}
		}
	}
}
