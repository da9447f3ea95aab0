package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fifteenlabs/tdlib-go/config"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tdgen",
	Short: "Schema compiler emitting typed Go bindings over a correlation runtime",
	Long: `tdgen compiles a declarative API schema into typed Go bindings.

Generated operations dispatch through a correlation runtime that
multiplexes concurrent requests over a single poll-based engine
connection and hands decoded events to the application.

Quick start:
  tdgen generate    # Generate bindings once
  tdgen watch       # Regenerate when the schema changes

Management:
  tdgen validate    # Validate configuration and schema
  tdgen version     # Print version information`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tdgen.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

// setupLogger builds the process logger from the log config section.
// The --log-level flag wins over the configured level.
func setupLogger(cfg config.LogConfig) zerolog.Logger {
	levelStr := cfg.Level
	if logLevel != "" {
		levelStr = logLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
