// cmd/tdterm/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/termview"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "configs/game.toml", "path to the TOML config")
	logPath := flag.String("log", "", "write logs to this file (terminal output is taken by the board)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := zap.NewNop()
	if *logPath != "" {
		cfg.Logging.Output = *logPath
		if log, err = config.NewLogger(cfg.Logging); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer log.Sync()

	game, err := app.NewGameFromConfig(cfg, log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	view := termview.NewView(screen)
	controller := termview.NewController(game)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Simulation.TickInterval)
	defer ticker.Stop()

	redraw := func() {
		cursor := controller.Cursor
		view.Draw(game.Snapshot(), &cursor, controller.Message)
	}
	redraw()

	for {
		select {
		case <-ticker.C:
			if !controller.Paused {
				game.Tick()
			}
			redraw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !controller.HandleKey(ev) {
					log.Info("quit requested", zap.Uint64("tick", game.CurrentTick()))
					return nil
				}
				redraw()
			case *tcell.EventResize:
				screen.Sync()
				redraw()
			}
		case sig := <-shutdownCh:
			log.Info("signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
}
