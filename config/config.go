package config

import (
	"time"

	"lendpool/core"

	"github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *core.Config) error {
	config.AutomaticLoadEnv("LENDPOOL")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.Pool.BorrowInterestRate <= 0 {
		cfg.Pool.BorrowInterestRate = 500
	}

	if cfg.Pool.LiquidationThreshold <= 0 {
		cfg.Pool.LiquidationThreshold = 8000
	}

	if cfg.Pool.LiquidationBonus <= 0 {
		cfg.Pool.LiquidationBonus = 500
	}

	if cfg.Oracle.Symbol == "" {
		cfg.Oracle.Symbol = "LEND"
	}

	if cfg.Oracle.MaxAge <= 0 {
		cfg.Oracle.MaxAge = 5 * time.Minute
	}

	if cfg.Oracle.Interval <= 0 {
		cfg.Oracle.Interval = 10 * time.Second
	}
}
