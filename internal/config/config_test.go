package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeFile(t, "game.toml", `
[simulation]
tick_interval = "40ms"
seed = 42
balance_file = "configs/balance.yaml"

[logging]
level = "debug"
format = "json"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Simulation.TickInterval != 40*time.Millisecond {
			t.Errorf("tick_interval: expected 40ms, got %s", cfg.Simulation.TickInterval)
		}
		if cfg.Simulation.Seed != 42 {
			t.Errorf("seed: expected 42, got %d", cfg.Simulation.Seed)
		}
		if cfg.Simulation.BalanceFile != "configs/balance.yaml" {
			t.Errorf("balance_file: got %q", cfg.Simulation.BalanceFile)
		}
		if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
			t.Errorf("logging: got %+v", cfg.Logging)
		}
		// секция [window] не задана — остаются значения по умолчанию
		if cfg.Window.Width != ScreenWidth || cfg.Window.Title != WindowTitle {
			t.Errorf("window defaults lost: %+v", cfg.Window)
		}
	})

	t.Run("rejects non-positive tick interval", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[simulation]\ntick_interval = \"0s\"\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for zero tick interval")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "broken.toml", "[simulation\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Simulation.TickInterval != TickInterval {
		t.Errorf("expected default tick interval, got %s", cfg.Simulation.TickInterval)
	}
	cfg, err = LoadOrDefault("")
	if err != nil || cfg == nil {
		t.Fatalf("empty path: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		log, err := NewLogger(LoggingConfig{Level: "warn", Format: format})
		if err != nil {
			t.Fatalf("%s: NewLogger failed: %v", format, err)
		}
		if log.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("%s: debug should be disabled at warn level", format)
		}
	}
	// неизвестный уровень — info
	log, err := NewLogger(LoggingConfig{Level: "loud"})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be enabled for unknown level")
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	log, err := NewLogger(LoggingConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	log.Info("hello")
	_ = log.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("unexpected log contents %q", data)
	}
}
