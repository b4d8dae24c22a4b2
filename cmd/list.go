/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tools with their install status",
	Long: `List every registry tool with its category, whether it is on PATH,
and its description.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("category", "", "Only list tools in this category")
	listCmd.Flags().Bool("group", false, "Group tools under category headings")

	mustRegister(ops.RegisterCommandWithTaxonomy("list", ops.GroupCatalog, ops.CategoryDiscovery, listCmd, "List tools with their install status"), "list")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a := state
	reg, err := a.registry()
	if err != nil {
		return err
	}
	category, _ := cmd.Flags().GetString("category")
	group, _ := cmd.Flags().GetBool("group")

	if category != "" {
		printTools(a, reg.ByCategory(category))
		return nil
	}
	if !group {
		printTools(a, reg.Tools())
		return nil
	}

	title := cases.Title(language.English)
	for i, c := range reg.Categories() {
		if i > 0 {
			a.printer.Println("")
		}
		a.printer.Println("%s", a.printer.Bold(title.String(c)))
		printTools(a, reg.ByCategory(c))
	}
	return nil
}
