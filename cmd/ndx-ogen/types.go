package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/ogen"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

// newTypesCmd creates the types command, listing the declared types of the
// extension or of a loaded namespace document.
func newTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the declared extension types",
		RunE:  runTypes,
	}
	cmd.Flags().StringP("namespace", "n", "", "List types of this namespace document instead of the built-in extension")
	return cmd
}

func runTypes(cmd *cobra.Command, _ []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}

	doc, err := resolveDocument(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%d types)\n", doc.Namespace.Name, doc.Namespace.Version, len(doc.TypeNames()))
	for _, g := range doc.Groups {
		if g.NeurodataTypeDef == "" {
			continue
		}
		fmt.Fprintf(out, "  %-36s extends %-24s %d attribute(s), %d dataset(s), %d link(s)\n",
			g.NeurodataTypeDef, g.NeurodataTypeInc, len(g.Attributes), len(g.Datasets), len(g.Links))
	}
	return nil
}

// newDescribeCmd creates the describe command, printing one type definition
// as YAML.
func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe TYPE",
		Short: "Print the definition of one extension type",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}
	cmd.Flags().StringP("namespace", "n", "", "Look up the type in this namespace document instead of the built-in extension")
	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}

	doc, err := resolveDocument(cmd)
	if err != nil {
		return err
	}

	group := doc.Type(args[0])
	if group == nil {
		return fmt.Errorf("type %s is not defined by namespace %s", args[0], doc.Namespace.Name)
	}

	data, err := yaml.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to serialize type %s: %w", args[0], err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func resolveDocument(cmd *cobra.Command) (*schema.Document, error) {
	namespacePath, err := cmd.Flags().GetString("namespace")
	if err != nil {
		return nil, fmt.Errorf("failed to get namespace flag: %w", err)
	}
	if namespacePath == "" {
		return ogen.Document(), nil
	}
	return schema.LoadDocument(namespacePath)
}
