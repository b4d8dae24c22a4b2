/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry",
	Long: `Export the registry to stdout or to a file. The output format follows
the file extension: .json (default), .yaml/.yml or .toml. Without --output,
--format selects the format written to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file")
	exportCmd.Flags().String("format", "json", "Format for stdout output (json|yaml|toml)")

	mustRegister(ops.RegisterCommandWithTaxonomy("export", ops.GroupCatalog, ops.CategoryTransfer, exportCmd, "Export the registry as JSON, YAML or TOML"), "export")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	a := state
	reg, err := a.registry()
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err := registry.ExportFile(output, reg.Payload()); err != nil {
			return err
		}
		a.printer.Success("Exported %d tools to %s.", reg.Len(), output)
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	f, err := registry.FormatFromPath("registry." + format)
	if err != nil {
		return err
	}
	return registry.Export(cmd.OutOrStdout(), reg.Payload(), f)
}
