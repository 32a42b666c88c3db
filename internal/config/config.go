// Package config loads quest settings from QUEST_* environment variables.
// Command-line flags in cmd/quest override these values.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Filler policies.
const (
	FillerEmpty = "empty"
	FillerMint  = "mint"
)

// Config is the runtime configuration shared by every command.
type Config struct {
	Store       string        `env:"QUEST_STORE"        envDefault:"file"`
	Dir         string        `env:"QUEST_DIR"          envDefault:".quest/adventures"`
	RedisAddr   string        `env:"QUEST_REDIS_ADDR"   envDefault:"localhost:6379"`
	RedisPrefix string        `env:"QUEST_REDIS_PREFIX" envDefault:"quest:adventure:"`
	RedisTTL    time.Duration `env:"QUEST_REDIS_TTL"    envDefault:"0s"`
	SQLitePath  string        `env:"QUEST_SQLITE_PATH"  envDefault:".quest/quest.db"`
	LogLevel    string        `env:"QUEST_LOG_LEVEL"    envDefault:"info"`
	Filler      string        `env:"QUEST_FILLER"       envDefault:"empty"`
	Addr        string        `env:"QUEST_ADDR"         envDefault:":8080"`
	ReadOnly    bool          `env:"QUEST_READ_ONLY"    envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown store backends and filler policies.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want memory, file, redis or sqlite)", c.Store)
	}
	switch c.Filler {
	case FillerEmpty, FillerMint:
	default:
		return fmt.Errorf("unknown filler policy %q (want empty or mint)", c.Filler)
	}
	return nil
}
