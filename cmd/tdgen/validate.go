package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fifteenlabs/tdlib-go/config"
	"github.com/fifteenlabs/tdlib-go/core/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and schema before generating",
	Long: `Validate the tdgen configuration file and the schema it names.

Checks:
  - YAML syntax is valid
  - Required fields are present
  - Schema parses and all type references resolve
  - Output directory is writable (optional)

Examples:
  tdgen validate
  tdgen validate --config /etc/tdgen/config.yaml`,
	RunE: runValidate,
}

var (
	validateCheckOutput bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateCheckOutput, "check-output", false, "check if the output directory is writable")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating %s...\n\n", cfgFile)

	// Check file exists
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("  %s Config file exists\n", crossMark)
		return fmt.Errorf("config file not found: %s", cfgFile)
	}
	fmt.Printf("  %s Config file exists\n", checkMark)

	// Load and validate config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("  %s Config syntax valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Printf("  %s Config syntax valid\n", checkMark)

	// Show config summary
	fmt.Printf("  %s Schema: %s\n", checkMark, cfg.Schema)
	fmt.Printf("  %s Output: %s\n", checkMark, cfg.Output)
	fmt.Printf("  %s Module: %s\n", checkMark, cfg.Module)

	// Parse the schema
	s, err := schema.ParseFile(cfg.Schema)
	if err != nil {
		fmt.Printf("  %s Schema valid\n", crossMark)
		return fmt.Errorf("schema error: %w", err)
	}
	fmt.Printf("  %s Schema valid\n", checkMark)
	fmt.Printf("  %s Types defined: %d\n", checkMark, len(s.Types()))
	fmt.Printf("  %s Operations defined: %d\n", checkMark, len(s.Operations()))

	// Optional: check output directory
	if validateCheckOutput {
		if err := checkOutputWritable(cfg.Output); err != nil {
			fmt.Printf("  %s Output writable\n", crossMark)
			fmt.Printf("      Error: %v\n", err)
		} else {
			fmt.Printf("  %s Output writable\n", checkMark)
		}
	}

	fmt.Println()
	fmt.Println("Configuration is valid.")
	return nil
}

func checkOutputWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	probe := filepath.Join(dir, ".tdgen-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)
