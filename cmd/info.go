/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"strconv"

	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <tool>",
	Short: "Show a tool's registry entry",
	Long: `Show every field of a tool's registry entry, whether it is installed,
and its install, update and verify commands rendered for the current prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	mustRegister(ops.RegisterCommandWithTaxonomy("info", ops.GroupCatalog, ops.CategoryDiscovery, infoCmd, "Show a tool's registry entry"), "info")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	a := state
	t, err := a.find(args[0])
	if err != nil {
		return err
	}
	showInfo(a, t)
	return nil
}

func showInfo(a *app, t registry.ToolRecord) {
	p := a.printer
	p.Println("%s", p.Bold(t.Name))
	p.Println("  Category: %s", t.Category)
	p.Println("  Description: %s", t.Description)
	p.Println("  Source: %s", t.Source)
	p.Println("  Requires root: %s", strconv.FormatBool(t.RequiresRoot))
	p.Println("  Docs: %s", t.Docs)
	p.Println("  Installed: %s", strconv.FormatBool(a.installed(t)))
	p.Println("  Install: %s", tools.Render(t.Install, a.exec))
	p.Println("  Update: %s", tools.Render(t.Update, a.exec))
	p.Println("  Verify: %s", tools.Render(t.Verify, a.exec))

	for _, issue := range registry.ValidateRecord(t) {
		p.Warn("  ! %s", issue.String())
	}
}
