package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/registry"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/validate"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate NAMESPACE_FILE...",
		Short: "Validate extension schema documents",
		Long: `Validate extension namespace documents and the schema sources they
reference: duplicate type names, unresolved parent and target types, and
inconsistent dims/shape declarations.

With --watch, the documents are revalidated whenever they change on disk.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	cmd.Flags().BoolP("watch", "w", false, "Revalidate on file changes until interrupted")
	cmd.Flags().StringP("report", "r", "", "Write a JSON validation report to this path")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	reportPath, err := cmd.Flags().GetString("report")
	if err != nil {
		return fmt.Errorf("failed to get report flag: %w", err)
	}

	validator := validate.New(registry.Base())

	if !watch {
		reports := validator.Files(args...)
		printReports(cmd, reports)
		if reportPath != "" {
			if err := writeReportFile(reportPath, reports); err != nil {
				return err
			}
		}
		return validate.Err(reports)
	}

	onResult := func(reports []*validate.Report) {
		printReports(cmd, reports)
		if reportPath != "" {
			if err := writeReportFile(reportPath, reports); err != nil {
				log.Error().Err(err).Msg("failed to write report")
			}
		}
	}

	watcher, err := validate.NewWatcher(validator, args, time.Duration(cfg.Watch.Debounce), onResult)
	if err != nil {
		return fmt.Errorf("failed to start watch mode: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	log.Info().Int("documents", len(args)).Msg("watching for schema changes, Ctrl-C to stop")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	return nil
}

func printReports(cmd *cobra.Command, reports []*validate.Report) {
	out := cmd.OutOrStdout()
	for _, report := range reports {
		errors, warnings := report.Counts()
		for _, issue := range report.Issues {
			fmt.Fprintf(out, "%s: %s\n", report.Source, issue)
		}
		if errors == 0 {
			fmt.Fprintf(out, "%s: ok (%d warning(s))\n", report.Source, warnings)
		} else {
			fmt.Fprintf(out, "%s: FAILED (%d error(s), %d warning(s))\n", report.Source, errors, warnings)
		}
	}
}

// reportFile is the envelope of the JSON report written by --report.
type reportFile struct {
	Reports []*validate.Report `json:"reports"`
}

func writeReportFile(path string, reports []*validate.Report) error {
	data, err := json.MarshalIndent(reportFile{Reports: reports}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
