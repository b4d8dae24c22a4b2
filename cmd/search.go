/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tools by name, category or description",
	Long: `Search tools by case-insensitive substring over name, category and
description. Queries containing glob characters (*, ?, [, {) also match
names and categories as patterns, for example 'search "rip*"'.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	mustRegister(ops.RegisterCommandWithTaxonomy("search", ops.GroupCatalog, ops.CategoryDiscovery, searchCmd, "Search tools by name, category or description"), "search")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	a := state
	reg, err := a.registry()
	if err != nil {
		return err
	}
	matches := reg.Search(args[0])
	if len(matches) == 0 {
		a.printer.Warn("No tools match '%s'.", args[0])
		return nil
	}
	printTools(a, matches)
	return nil
}
