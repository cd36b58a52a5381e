package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evictkv/internal/config"
	"evictkv/internal/console"
	"evictkv/internal/logging"
	"evictkv/store"
	"evictkv/store/policy"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "evictkv [script]",
		Short: "In-memory key-value shell with LRU eviction",
		Long: `evictkv runs a command shell over an in-memory key-value store that
discards the least recently used entry once it grows past its capacity.

Commands are read from the script file, or from stdin when none is given.
A capacity of 0 disables eviction.

Examples:
  # Interactive session with room for 100 entries
  evictkv --capacity 100

  # Replay a script against an exact 2-entry bound
  evictkv --capacity 2 --strict commands.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configFile, args)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default ./evictkv.{toml,yaml,json})")
	cmd.Flags().IntP("capacity", "n", 0, "maximum entries before eviction (0 = unbounded)")
	cmd.Flags().Bool("strict", false, "bound the store to exactly capacity entries instead of capacity+1")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "console", "log format: console, json")

	return cmd
}

func run(cmd *cobra.Command, configFile string, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := []policy.Option{policy.WithLogger(logger.Named("lru"))}
	if cfg.Strict {
		opts = append(opts, policy.WithStrictCapacity())
	}
	lru := policy.NewLRUWithEvict[string, string](cfg.Capacity, func(key, _ string) {
		logger.Info("key evicted", zap.String("key", key))
	}, opts...)

	logger.Debug("store initialized",
		zap.Int("capacity", cfg.Capacity),
		zap.Bool("strict", cfg.Strict),
	)

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	return console.New(store.New[string, string](lru), lru, logger).Run(in, cmd.OutOrStdout())
}
