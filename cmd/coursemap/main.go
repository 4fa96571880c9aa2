package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/coursemap/internal/bootstrap"
	"github.com/yigit/coursemap/internal/config"
	"github.com/yigit/coursemap/internal/pkg/logger"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	lgr zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "coursemap",
	Short: "Course catalog normalizer and API",
	Long: `coursemap turns the registrar's raw course exports into one normalized
catalog, where every prerequisite, no-credit and paired reference is a
"code - name" tag and every course lists the courses it blocks.

The catalog can be exported to a spreadsheet, imported into PostgreSQL and
served over HTTP with fuzzy search and grade histograms.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, lgr, err = bootstrap.LoadConfigAndSetupLogger(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" || logFormat != "" {
			level, format := cfg.Logging.Level, cfg.Logging.Format
			if logLevel != "" {
				level = logLevel
			}
			if logFormat != "" {
				format = logFormat
			}
			lgr = logger.Configure(logger.ConfigFromStrings(level, format))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text or json)")

	rootCmd.AddCommand(normalizeCmd, pruneCmd, exportCmd, importCmd, serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
