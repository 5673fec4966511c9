// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 800
	WindowTitle  = "Castle Defense"

	TickInterval = 80 * time.Millisecond // период таймера симуляции
	MaxDeltaTime = 0.25                  // секунд, больше за один кадр не накапливаем

	BoardWidth  = 10
	BoardHeight = 10
	RoadColumn  = 4
	PlaceRadius = 2

	CastleHealth = 1000

	UnitHealth        = 100
	UnitForcePerLevel = 20
	MaxUnitLevel      = 7

	BaseUnitsPerWave = 4

	FireCadence  = 5   // башни стреляют каждый 5-й тик
	DecayCadence = 6   // линии атак гаснут каждый 6-й тик
	WaveCadence  = 120 // новая волна каждые 120 тиков
	SpawnCadence = 3   // враг из очереди выходит каждые 3 тика
)

// Config — настройки запуска, читаются из TOML.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Window     WindowConfig     `toml:"window"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	TickInterval time.Duration `toml:"tick_interval"`
	Seed         int64         `toml:"seed"`         // 0 — сид от текущего времени
	BalanceFile  string        `toml:"balance_file"` // пусто — встроенный баланс
	Script       string        `toml:"script"`       // Lua-сценарий для cmd/tdsim
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // путь к файлу; пусто — stderr
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Simulation.TickInterval <= 0 {
		return nil, fmt.Errorf("config %s: tick_interval must be positive, got %s", path, cfg.Simulation.TickInterval)
	}
	return cfg, nil
}

// LoadOrDefault загружает конфиг, если файл существует, иначе возвращает значения по умолчанию.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}
	return Load(path)
}

// Defaults возвращает конфигурацию по умолчанию.
func Defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickInterval: TickInterval,
		},
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
