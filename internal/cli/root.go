// Package cli implements the mailcheck command line tool.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zostay/go-mailcheck/score"
	"github.com/zostay/go-mailcheck/validate"
)

var (
	rootCmd = &cobra.Command{
		Use:   "mailcheck",
		Short: "Check email addresses and score their domains",
		Long: `The mailcheck tool checks email addresses against a practical address
grammar and scores each address's domain on a 0 to 100 trust scale. Use
"one" for a single address, "many" for line-separated lists, and "header"
to pull addresses out of mail message headers.

A rejected address is reported in the output and through the exit status;
it is not a tool failure.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cfg    *Config
	logger *zap.Logger
	engine *validate.Engine
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "level logs are filtered at (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("env", "dev", `runtime environment, "dev" or "prod"`)
	rootCmd.PersistentFlags().String("scores", "", "YAML file listing trusted and disposable domains")
	rootCmd.PersistentFlags().Int("workers", 1, "goroutines to spread batch checks across")
	rootCmd.PersistentFlags().Bool("json", false, "emit results as JSON")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err = BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}

	table := score.Default()
	if cfg.Scores != "" {
		table, err = score.LoadFile(cfg.Scores)
		if err != nil {
			return err
		}
		logger.Debug("loaded score table",
			zap.String("file", cfg.Scores),
			zap.Int("domains", table.Len()))
	}

	engine = validate.New(
		validate.WithScorer(table),
		validate.WithWorkers(cfg.Workers),
	)

	return nil
}

// Execute runs the mailcheck command line and returns its error, if any.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}
