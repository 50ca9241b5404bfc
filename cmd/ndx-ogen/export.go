package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/ogen"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/registry"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/validate"
)

// newExportCmd creates the export command, which writes the namespace and
// extensions documents from the in-code declarations.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the extension's namespace and extensions YAML documents",
		RunE:  runExport,
	}
	cmd.Flags().StringP("dir", "d", "", "Output directory (defaults to the configured spec dir)")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	if dir == "" {
		dir = cfg.Spec.Dir
	}

	doc := ogen.Document()

	// Never export a document the validator would reject.
	report := validate.New(registry.Base()).Document(doc)
	for _, issue := range report.Issues {
		log.Warn().Str("path", issue.Path).Str("code", issue.Code).Msg(issue.Message)
	}
	if err := report.Err(); err != nil {
		return err
	}

	if err := doc.Save(dir); err != nil {
		return fmt.Errorf("failed to export schema: %w", err)
	}

	log.Info().
		Str("dir", dir).
		Str("namespace", doc.Namespace.Name).
		Str("version", doc.Namespace.Version).
		Int("types", len(doc.TypeNames())).
		Msg("schema exported")
	fmt.Fprintln(cmd.OutOrStdout(), doc.NamespaceFileName())
	fmt.Fprintln(cmd.OutOrStdout(), doc.ExtensionsFileName())
	return nil
}
