// cmd/tdsim/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/scripting"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run выполняет Lua-сценарий без окна и печатает итог сессии.
func run() error {
	cfgPath := flag.String("config", "configs/game.toml", "path to the TOML config")
	script := flag.String("script", "", "Lua scenario (overrides simulation.script)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *script != "" {
		cfg.Simulation.Script = *script
	}
	if cfg.Simulation.Script == "" {
		return fmt.Errorf("no scenario given: set simulation.script or pass -script")
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	game, err := app.NewGameFromConfig(cfg, log)
	if err != nil {
		return err
	}
	engine := scripting.NewEngine(game, log)
	defer engine.Close()

	if err := engine.RunFile(cfg.Simulation.Script); err != nil {
		return err
	}

	snap := game.Snapshot()
	stats := game.Stats()
	log.Info("scenario finished",
		zap.Uint64("tick", snap.Tick),
		zap.Int("wave", snap.WaveLevel-1),
		zap.Int("castle", snap.Castle.Health),
		zap.Int("spawned", stats.Spawned),
		zap.Int("killed", stats.Killed),
		zap.Int("escaped", stats.Escaped),
		zap.Bool("lost", game.Lost()))
	fmt.Printf("tick %d  wave %d  castle %d/%d  spawned %d  killed %d  escaped %d  lost %v\n",
		snap.Tick, snap.WaveLevel-1, snap.Castle.Health, snap.Castle.MaxHealth,
		stats.Spawned, stats.Killed, stats.Escaped, game.Lost())
	return nil
}
