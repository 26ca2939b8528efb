package config_fx

import (
	"go.uber.org/fx"
	"roam/internal/config"
	"roam/pkg/logging"
	"roam/pkg/utils"
)

var Module = fx.Provide(provideConfig, provideBreakerOptions)

func provideConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, nil
}

func provideBreakerOptions(cfg *config.Config) utils.BreakerOptions {
	return utils.BreakerOptions{
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		MinRequests:  cfg.Breaker.MinRequests,
		FailureRatio: cfg.Breaker.FailureRatio,
	}
}
