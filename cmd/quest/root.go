package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/quest/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Quest is a branching adventure authoring and playback engine",
	Long: `Quest stores adventures as graphs of dialogue, combat, exploration, skill, item and loot nodes.
Author them over HTTP or from the command line, and play them in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("store", "", "Store backend: memory, file, redis or sqlite (env QUEST_STORE)")
	f.String("dir", "", "Directory of the file store (env QUEST_DIR)")
	f.String("redis-addr", "", "Redis address (env QUEST_REDIS_ADDR)")
	f.String("sqlite", "", "SQLite database path (env QUEST_SQLITE_PATH)")
	f.String("log-level", "", "Log level: debug, info, warn or error (env QUEST_LOG_LEVEL)")
	f.String("filler", "", "Edge filler on type change: empty or mint (env QUEST_FILLER)")
	f.Bool("read-only", false, "Reject every write to the store (env QUEST_READ_ONLY)")
}

// loadConfig reads the environment and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]*string{
		"store":      &cfg.Store,
		"dir":        &cfg.Dir,
		"redis-addr": &cfg.RedisAddr,
		"sqlite":     &cfg.SQLitePath,
		"log-level":  &cfg.LogLevel,
		"filler":     &cfg.Filler,
	}
	for name, dst := range overrides {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return config.Config{}, err
		}
		*dst = v
	}
	if cmd.Flags().Changed("read-only") {
		cfg.ReadOnly, _ = cmd.Flags().GetBool("read-only")
	}
	if cmd.Flags().Lookup("addr") != nil && cmd.Flags().Changed("addr") {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
