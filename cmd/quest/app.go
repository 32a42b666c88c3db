package main

import (
	"fmt"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/internal/config"
	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/pkg/adapters/file"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/adapters/redis"
	"github.com/aretw0/quest/pkg/adapters/sqlite"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/observability"
	"github.com/aretw0/quest/pkg/persistence/middleware"
	"github.com/spf13/cobra"
)

// app is the engine plus the configuration it was built from.
type app struct {
	*quest.Engine
	cfg config.Config
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return buildApp(cfg)
}

func buildApp(cfg config.Config) (*app, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	opts := []quest.Option{
		quest.WithLogger(logger),
		quest.WithLifecycleHooks(observability.LogHooks(logger)),
	}
	if cfg.Filler == config.FillerMint {
		opts = append(opts, quest.WithFillerPolicy(editor.FillerMintID))
	}
	if cfg.ReadOnly {
		opts = append(opts, quest.WithMiddleware(middleware.NewReadOnly()))
	}

	switch cfg.Store {
	case config.StoreMemory:
		opts = append(opts, quest.WithStore(memory.NewStore()))
	case config.StoreFile:
		opts = append(opts, quest.WithStore(file.New(cfg.Dir, file.WithLogger(logger))))
	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.SQLitePath, sqlite.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		opts = append(opts, quest.WithStore(s), quest.WithCloser(s.Close))
	case config.StoreRedis:
		s := redis.New(cfg.RedisAddr, "", 0,
			redis.WithPrefix(cfg.RedisPrefix),
			redis.WithTTL(cfg.RedisTTL),
			redis.WithLogger(logger),
		)
		opts = append(opts,
			quest.WithStore(s),
			quest.WithCloser(s.Close),
			quest.WithLocker(redis.NewLocker(s.Client(), cfg.RedisPrefix)),
		)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	eng, err := quest.New(opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("quest initialized", "store", cfg.Store)
	return &app{Engine: eng, cfg: cfg}, nil
}
