/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset command templates",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	mustRegister(ops.RegisterCommandWithTaxonomy("presets", ops.GroupCatalog, ops.CategoryDiscovery, presetsCmd, "List preset command templates"), "presets")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	a := state
	presets, err := registry.LoadPresets(a.paths.Presets)
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		a.printer.Info("No presets configured yet. Add entries to tools/presets.json.")
		return nil
	}
	for _, preset := range presets {
		a.printer.Println("- %s: %s", a.printer.Bold(preset.Name), preset.Description)
		for _, example := range preset.Examples {
			a.printer.Println("  > %s", example)
		}
	}
	return nil
}
