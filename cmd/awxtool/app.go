package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/tuanngd/awxtool/internal/awx"
	"github.com/tuanngd/awxtool/internal/config"
	"github.com/tuanngd/awxtool/internal/history"
	"github.com/tuanngd/awxtool/internal/tools"
)

// app bundles the configured registry and the optional history store so
// every subcommand builds its dependencies the same way.
type app struct {
	cfg   *config.Config
	reg   *tools.Registry
	store *history.Store
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, err
	}
	cfg.SetupLogger()

	authValue, err := cfg.AcquireAuth(ctx)
	if err != nil {
		return nil, err
	}

	client, err := awx.NewClient(awx.Config{
		BaseURL:   cfg.AWX.BaseURL,
		AuthValue: authValue,
		Timeout:   cfg.Timeout(),
		TLS:       cfg.TLSConfig(),
		RateLimit: cfg.AWX.RateLimit,
		Burst:     cfg.AWX.Burst,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	var exec awx.Executor = client
	if cfg.History.Enabled {
		path := cfg.History.Path
		if path == "" {
			path = history.DbFileName
		}
		st, err := history.Open(path)
		if err != nil {
			return nil, err
		}
		a.store = st
		exec = history.WrapExecutor(exec, st)
	}

	reg := tools.NewRegistry()
	tools.RegisterAll(reg, exec)
	a.reg = reg
	return a, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}
