package app

import (
	"fmt"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"

	"go.uber.org/zap"
)

// LoadBalance returns the balance named by the config, or the defaults when none is set.
func LoadBalance(cfg *config.Config) (*defs.Balance, error) {
	if cfg.Simulation.BalanceFile == "" {
		return defs.DefaultBalance(), nil
	}
	balance, err := defs.LoadBalance(cfg.Simulation.BalanceFile)
	if err != nil {
		return nil, fmt.Errorf("load balance: %w", err)
	}
	return balance, nil
}

// NewGameFromConfig собирает сессию по настройкам запуска.
func NewGameFromConfig(cfg *config.Config, log *zap.Logger, opts ...Option) (*Game, error) {
	balance, err := LoadBalance(cfg)
	if err != nil {
		return nil, err
	}
	all := append([]Option{WithSeed(cfg.Simulation.Seed), WithLogger(log)}, opts...)
	return NewGame(balance, all...), nil
}
