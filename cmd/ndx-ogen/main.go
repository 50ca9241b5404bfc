// Package main is the entry point for the ndx-ogen binary. It provides a
// CLI for exporting, validating, and inspecting the ndx-patterned-ogen
// extension schema.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/config"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for ndx-ogen.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ndx-ogen",
		Short: "Tooling for the ndx-patterned-ogen extension schema",
		Long: `Tooling for the ndx-patterned-ogen NWB extension schema.

The extension types are declared in code; this tool exports them to the
namespace and extensions YAML documents, validates schema documents against
the base vocabulary, and lists the declared types.

Examples:
  ndx-ogen export --dir spec
  ndx-ogen validate spec/ndx-patterned-ogen.namespace.yaml --watch
  ndx-ogen types`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newDescribeCmd())

	return rootCmd
}

// setup loads the tool configuration and configures logging. Every
// subcommand calls it first.
func setup(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logging.SetupLogger(logging.Config{Level: cfg.Logging.Level, Pretty: true})
	return cfg, nil
}
