// Package cmd provides CLI commands for linkedart.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

// NewRootCmd builds the linkedart command tree. Each call returns an
// independent tree with its own configuration.
func NewRootCmd() *cobra.Command {
	app := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "linkedart",
		Short: "Query Linked.Art JSON-LD records",
		Long: `Linkedart extracts structured values from Linked.Art JSON-LD records.

Records are matched against controlled vocabulary terms (Getty AAT by default)
in any of their identifier forms, with optional language filtering.

Examples:
  linkedart extract name accession -i object.json
  linkedart extract description --language fr --strip-html -i object.json
  linkedart match --source referred_to_by -c aat:300435430 -i object.json
  linkedart batch 'records/**/*.json' -e name,dates --workers 8
  linkedart vocab normalize aat:300404670`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			setupLogger()
			return app.initConfig(cmd)
		},
	}

	app.bindFlags(cmd)

	cmd.AddCommand(newExtractCmd(app))
	cmd.AddCommand(newMatchCmd(app))
	cmd.AddCommand(newBatchCmd(app))
	cmd.AddCommand(newVocabCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}
