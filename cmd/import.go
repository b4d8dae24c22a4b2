/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
	"github.com/spf13/cobra"
)

var newImporter = registry.NewImporter

var importCmd = &cobra.Command{
	Use:   "import <path|url>",
	Short: "Replace the registry from a file or URL",
	Long: `Replace tools/registry.json with the contents of a JSON, YAML or TOML
document, read from a local path or an http(s) URL. The document must
have a top-level registry key and pass schema validation; it is saved as
JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	mustRegister(ops.RegisterCommandWithTaxonomy("import", ops.GroupCatalog, ops.CategoryTransfer, importCmd, "Replace the registry from a file or URL"), "import")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	a := state
	reg, err := newImporter().Import(args[0], a.paths.Registry)
	if err != nil {
		return err
	}
	a.printer.Success("Imported %d tools into %s.", reg.Len(), a.paths.Registry)
	for _, issue := range reg.Validate() {
		a.printer.Warn("  ! %s", issue.String())
	}
	return nil
}
