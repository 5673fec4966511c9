// internal/system/wave.go
package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/utils"

	"go.uber.org/zap"
)

// WaveSystem ставит волны врагов в очередь.
type WaveSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *WaveSystem) Phase() Phase { return PhaseWave }

// Update на тике волны генерирует волну текущего уровня и повышает уровень.
func (s *WaveSystem) Update(tick uint64) {
	if s.world.Counters.Wave%s.world.Balance.Cadence.Wave != 0 {
		return
	}
	s.GenerateWave(s.world.WaveLevel)
	s.world.WaveLevel++
}

// GenerateWave добавляет в очередь Base × level уровней, каждый равномерно
// из [level mod MaxLevel, level]. Нижняя граница по модулю — мягкий потолок
// сложности: после MaxLevel она снова падает.
func (s *WaveSystem) GenerateWave(level int) []int {
	rules := s.world.Balance.Waves
	count := rules.BaseUnitsPerWave * level
	floor := level % s.world.Balance.Units.MaxLevel

	levels := make([]int, count)
	for i := range levels {
		levels[i] = s.rng.IntRange(floor, level)
	}
	s.world.Queue.Push(levels...)

	s.log.Info("wave generated",
		zap.Int("level", level),
		zap.Int("units", count),
		zap.Int("floor", floor),
		zap.Int("pending", s.world.Queue.Len()))
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveGenerated, Data: event.WaveData{Level: level, Levels: levels}})
	}
	return levels
}

// SpawnSystem выпускает врагов из очереди в точке появления.
type SpawnSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewSpawnSystem(world *entity.World, eventDispatcher *event.Dispatcher, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *SpawnSystem) Phase() Phase { return PhaseSpawn }

func (s *SpawnSystem) Update(tick uint64) {
	if s.world.Queue.Len() == 0 {
		return
	}
	if s.world.Counters.Spawn%s.world.Balance.Cadence.Spawn != 0 {
		return
	}
	s.ReleaseNext()
}

// ReleaseNext вынимает старейший уровень и ставит врага в точку появления.
// Пустая очередь — штатная ситуация, возвращается nil.
func (s *SpawnSystem) ReleaseNext() *component.Unit {
	level, ok := s.world.Queue.Pop()
	if !ok {
		return nil
	}
	// нижняя граница волны по модулю может дать 0, такой враг стоял бы на месте
	if level < 1 {
		level = 1
	}
	spawn := s.world.Balance.Waves.Spawn
	unit := component.NewUnit(s.world.NewEntity(), defs.UnitUFO, spawn, level, s.world.Balance.Units)
	s.world.AddEnemy(unit)

	s.log.Debug("enemy spawned",
		zap.Uint64("id", uint64(unit.ID)),
		zap.Int("level", level),
		zap.Int("pending", s.world.Queue.Len()))
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: unitData(unit)})
	}
	return unit
}
