// internal/app/game.go
package app

import (
	"sync"

	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/system"
	"go-castle-defense/internal/utils"

	"go.uber.org/zap"
)

// Stats — счётчики сессии для интерфейса и сценариев.
type Stats struct {
	Spawned int
	Killed  int
	Escaped int
	Waves   int
}

// Game holds the session state and coordinates the systems each tick.
// Все команды и тик выполняются под одним мьютексом, так что драйвер
// таймера и рендерер могут жить в разных горутинах.
type Game struct {
	mu sync.Mutex

	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	runner         *system.Runner
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem
	DecaySystem    *system.DecaySystem
	WaveSystem     *system.WaveSystem
	SpawnSystem    *system.SpawnSystem
	CleanupSystem  *system.CleanupSystem

	log   *zap.Logger
	stats Stats
	lost  bool
}

// Option настраивает Game при создании.
type Option func(*options)

type options struct {
	seed       int64
	log        *zap.Logger
	dispatcher *event.Dispatcher
}

// WithSeed фиксирует сид генератора волн.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithDispatcher подключает внешний диспетчер, чтобы подписаться до первого тика.
// Подписчики вызываются под мьютексом сессии и не должны вызывать методы Game.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// NewGame initializes a new session. balance == nil — эталонный баланс.
func NewGame(balance *defs.Balance, opts ...Option) *Game {
	if balance == nil {
		balance = defs.DefaultBalance()
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dispatcher == nil {
		o.dispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld(balance)
	rng := utils.NewPRNGService(o.seed)
	g := &Game{
		World:           world,
		EventDispatcher: o.dispatcher,
		Rng:             rng,
		runner:          system.NewRunner(world),
		MovementSystem:  system.NewMovementSystem(world),
		CombatSystem:    system.NewCombatSystem(world, o.dispatcher, o.log),
		DecaySystem:     system.NewDecaySystem(world),
		WaveSystem:      system.NewWaveSystem(world, rng, o.dispatcher, o.log),
		SpawnSystem:     system.NewSpawnSystem(world, o.dispatcher, o.log),
		CleanupSystem:   system.NewCleanupSystem(world, o.dispatcher, o.log),
		log:             o.log,
	}
	g.runner.Register(g.MovementSystem)
	g.runner.Register(g.CombatSystem)
	g.runner.Register(g.DecaySystem)
	g.runner.Register(g.WaveSystem)
	g.runner.Register(g.SpawnSystem)
	g.runner.Register(g.CleanupSystem)

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{event.EnemySpawned, event.EnemyKilled, event.EnemyEscaped, event.WaveGenerated, event.CastleFallen} {
		o.dispatcher.Subscribe(t, listener)
	}

	g.log.Info("session created",
		zap.Int64("seed", rng.Seed()),
		zap.Int("width", balance.Board.Width),
		zap.Int("height", balance.Board.Height))
	return g
}

// Tick продвигает симуляцию на один шаг. Тик всегда выполняется до конца.
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.runner.Tick()
}

// Advance выполняет n тиков подряд.
func (g *Game) Advance(n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

// Stats возвращает счётчики сессии.
func (g *Game) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

// Lost сообщает, разрушен ли замок.
func (g *Game) Lost() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lost
}

// CurrentTick — номер следующего тика.
func (g *Game) CurrentTick() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.World.Tick
}

// GameEventListener ведёт статистику сессии. Вызывается внутри тика,
// под уже захваченным мьютексом.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		l.game.stats.Spawned++
	case event.EnemyKilled:
		l.game.stats.Killed++
	case event.EnemyEscaped:
		l.game.stats.Escaped++
	case event.WaveGenerated:
		l.game.stats.Waves++
	case event.CastleFallen:
		l.game.lost = true
	}
}
