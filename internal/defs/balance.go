// internal/defs/balance.go
package defs

import (
	"fmt"
	"os"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/types"

	"gopkg.in/yaml.v3"
)

// BoardDef — размеры поля и правило раскладки дороги.
type BoardDef struct {
	Width       int   `yaml:"width"`
	Height      int   `yaml:"height"`
	RoadColumn  int   `yaml:"road_column"`
	PlaceRadius int   `yaml:"place_radius"` // ширина полосы под башни по обе стороны дороги
	Biome       Biome `yaml:"biome"`
}

// CastleDef — защищаемый объект.
type CastleDef struct {
	Health   int         `yaml:"health"`
	Position types.Point `yaml:"position"`
}

// Balance — все численные параметры симуляции.
type Balance struct {
	Board   BoardDef                 `yaml:"board"`
	Cadence Cadence                  `yaml:"cadence"`
	Waves   WaveRules                `yaml:"waves"`
	Units   UnitStats                `yaml:"units"`
	Towers  map[TowerKind]TowerStats `yaml:"towers"`
	Castle  CastleDef                `yaml:"castle"`
}

// DefaultBalance возвращает эталонные параметры.
func DefaultBalance() *Balance {
	return &Balance{
		Board: BoardDef{
			Width:       config.BoardWidth,
			Height:      config.BoardHeight,
			RoadColumn:  config.RoadColumn,
			PlaceRadius: config.PlaceRadius,
			Biome:       BiomeSpring,
		},
		Cadence: Cadence{
			Fire:  config.FireCadence,
			Decay: config.DecayCadence,
			Wave:  config.WaveCadence,
			Spawn: config.SpawnCadence,
		},
		Waves: WaveRules{
			BaseUnitsPerWave: config.BaseUnitsPerWave,
			FirstLevel:       1,
			Spawn:            types.Point{X: config.RoadColumn, Y: 0},
		},
		Units: UnitStats{
			BaseHealth:    config.UnitHealth,
			ForcePerLevel: config.UnitForcePerLevel,
			MaxLevel:      config.MaxUnitLevel,
		},
		Towers: map[TowerKind]TowerStats{
			TowerArcher: DefaultTowerStats(),
			TowerWizard: DefaultTowerStats(),
		},
		Castle: CastleDef{
			Health:   config.CastleHealth,
			Position: types.Point{X: config.RoadColumn, Y: config.BoardHeight - 1},
		},
	}
}

// TowerStatsFor возвращает коэффициенты для типа башни.
func (b *Balance) TowerStatsFor(kind TowerKind) (TowerStats, bool) {
	stats, ok := b.Towers[kind]
	return stats, ok
}

// LoadBalance reads a YAML balance file on top of the defaults.
// Keys absent from the file keep their default values.
func LoadBalance(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read balance %s: %w", path, err)
	}
	return ParseBalance(data, path)
}

// ParseBalance разбирает YAML-документ баланса. name используется только в ошибках.
func ParseBalance(data []byte, name string) (*Balance, error) {
	b := DefaultBalance()
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse balance %s: %w", name, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance in %s: %w", name, err)
	}
	return b, nil
}

// Validate проверяет целостность параметров.
func (b *Balance) Validate() error {
	if b.Board.Width < 1 || b.Board.Height < 1 {
		return fmt.Errorf("board size must be positive, got %dx%d", b.Board.Width, b.Board.Height)
	}
	if b.Board.RoadColumn < 0 || b.Board.RoadColumn >= b.Board.Width {
		return fmt.Errorf("road column %d outside board width %d", b.Board.RoadColumn, b.Board.Width)
	}
	if b.Board.PlaceRadius < 0 {
		return fmt.Errorf("place radius cannot be negative, got %d", b.Board.PlaceRadius)
	}
	if !b.Board.Biome.Valid() {
		return fmt.Errorf("unknown biome %q", b.Board.Biome)
	}
	if b.Cadence.Fire == 0 || b.Cadence.Decay == 0 || b.Cadence.Wave == 0 || b.Cadence.Spawn == 0 {
		return fmt.Errorf("cadences must be positive, got %+v", b.Cadence)
	}
	if b.Waves.BaseUnitsPerWave < 1 {
		return fmt.Errorf("base units per wave must be at least 1, got %d", b.Waves.BaseUnitsPerWave)
	}
	if b.Waves.FirstLevel < 1 {
		return fmt.Errorf("first wave level must be at least 1, got %d", b.Waves.FirstLevel)
	}
	if !b.Waves.Spawn.Within(b.Board.Width, b.Board.Height) {
		return fmt.Errorf("spawn point %v outside board", b.Waves.Spawn)
	}
	if b.Units.MaxLevel < 1 {
		return fmt.Errorf("max unit level must be at least 1, got %d", b.Units.MaxLevel)
	}
	if b.Units.BaseHealth < 1 {
		return fmt.Errorf("unit base health must be at least 1, got %d", b.Units.BaseHealth)
	}
	if b.Units.ForcePerLevel < 0 {
		return fmt.Errorf("unit force cannot be negative, got %d", b.Units.ForcePerLevel)
	}
	for _, kind := range TowerKinds {
		stats, ok := b.Towers[kind]
		if !ok {
			return fmt.Errorf("tower %s: stats missing", kind)
		}
		if stats.MaxLevel < 1 {
			return fmt.Errorf("tower %s: max level must be at least 1, got %d", kind, stats.MaxLevel)
		}
		if stats.RangePerLevel < 0 || stats.DamagePerLevel < 0 || stats.CostPerLevel < 0 {
			return fmt.Errorf("tower %s: per-level values cannot be negative", kind)
		}
	}
	for kind := range b.Towers {
		if !kind.Valid() {
			return fmt.Errorf("unknown tower kind %q", kind)
		}
	}
	if b.Castle.Health < 1 {
		return fmt.Errorf("castle health must be at least 1, got %d", b.Castle.Health)
	}
	return nil
}
