package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saaninko/maze-solver/config"
)

var (
	cfgPath   string
	logLevel  string
	logFormat string
	noColor   bool
	workers   int

	// cfg is resolved once in the persistent pre-run and shared by every
	// subcommand. runID tags all log records of one invocation.
	cfg   config.Config
	runID string

	rootCmd = &cobra.Command{
		Use:   "mazesolver",
		Short: "Solve ASCII mazes with A* over a ladder of move budgets",
		Long: `Mazesolver reads a rectangular ASCII maze from a .txt file and hunts for
an escape route:

  '#'  wall
  ' '  movable space
  '^'  entry marker on the outer border
  'E'  exit marker on the outer border

Every up/down/left/right step costs one move. The solver pairs each entry
with each exit, runs A* per pair, and retries the whole hunt over an
ascending ladder of move budgets until some tier yields a route.`,
	}
)

func init() {
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&noColor, "no-color", false, "disable styled output")
	pf.IntVar(&workers, "workers", 0, "concurrent pair searches (1 = sequential)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}

		// Flags override whatever the file said.
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if logFormat != "" {
			cfg.LogFormat = logFormat
		}
		if noColor {
			cfg.NoColor = true
		}
		if workers != 0 {
			cfg.Workers = workers
		}
		if err = cfg.Validate(); err != nil {
			return err
		}

		slog.SetDefault(newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr))
		runID = uuid.NewString()
		slog.Debug("configuration ready",
			"run_id", runID,
			"tiers", cfg.Tiers,
			"workers", cfg.Workers,
			"log_level", cfg.LogLevel,
			"log_format", cfg.LogFormat)

		return nil
	}
}
