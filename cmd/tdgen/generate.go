package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fifteenlabs/tdlib-go/config"
	"github.com/fifteenlabs/tdlib-go/core/gen"
	"github.com/fifteenlabs/tdlib-go/core/schema"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go bindings from the schema",
	Long: `Generate typed Go bindings from the configured schema.

The generator will:
  - Load configuration from tdgen.yaml (or --config)
  - Or load configuration from TDGEN_* environment variables
  - Parse and validate the schema
  - Emit the types and functions packages under the output directory

Environment variables (for CI pipelines):
  TDGEN_SCHEMA              - Schema file path (required)
  TDGEN_MODULE              - Import path of the emitted module (required)
  TDGEN_OUTPUT              - Output directory (default: gen)
  TDGEN_INCLUDE_RESTRICTED  - Emit restricted definitions (default: false)
  TDGEN_TEXT                - Text representation: standard or shared

Examples:
  tdgen generate
  tdgen generate --config /etc/tdgen/config.yaml

  # CI (env vars only):
  TDGEN_SCHEMA=api.yaml TDGEN_MODULE=example.com/app/td tdgen generate`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	hasEnvConfig := config.HasEnvConfig()

	// No configuration at all
	if !hasConfigFile && !hasEnvConfig {
		fmt.Println("No configuration found.")
		fmt.Println()
		fmt.Printf("Option 1: Create %s with at least schema and module set\n", cfgFile)
		fmt.Println("Option 2: Set TDGEN_SCHEMA and TDGEN_MODULE environment variables")
		fmt.Println()
		fmt.Println("Example (env vars):")
		fmt.Println("  TDGEN_SCHEMA=api.yaml TDGEN_MODULE=example.com/app/td tdgen generate")
		return nil
	}

	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if !hasConfigFile {
		fmt.Println("Running with environment variables (no config file)")
	}

	logger := setupLogger(cfg.Log)

	files, err := regenerate(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d files from %s:\n", len(files), cfg.Schema)
	for _, f := range files {
		fmt.Printf("  %s\n", filepath.Join(cfg.Output, f.Path))
	}
	return nil
}

// regenerate runs one full generation pass and writes the emitted files
// under the configured output directory. Shared by generate and watch.
func regenerate(cfg *config.Config, logger zerolog.Logger) ([]gen.File, error) {
	s, err := schema.ParseFile(cfg.Schema)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	g, err := gen.New(gen.Options{
		ModulePath:        cfg.Module,
		TypesPackage:      cfg.TypesPackage,
		FunctionsPackage:  cfg.FunctionsPackage,
		IncludeRestricted: cfg.IncludeRestricted,
		SharedStrings:     cfg.TextRepresentation == "shared",
		EventClass:        cfg.EventClass,
	})
	if err != nil {
		return nil, fmt.Errorf("configure generator: %w", err)
	}

	files, err := g.Generate(s)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	for _, f := range files {
		dst := filepath.Join(cfg.Output, f.Path)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(dst, f.Content, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", dst, err)
		}
	}

	logger.Info().
		Str("schema", cfg.Schema).
		Str("output", cfg.Output).
		Int("files", len(files)).
		Msg("bindings generated")

	return files, nil
}
