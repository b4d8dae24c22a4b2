/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/internal/tui"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pick a tool interactively",
	Long: `Pick a tool interactively and show its info. fzf is used when it is
installed; otherwise a built-in picker runs in the terminal.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("builtin", false, "Use the built-in picker even when fzf is installed")

	mustRegister(ops.RegisterCommandWithTaxonomy("tui", ops.GroupCatalog, ops.CategoryDiscovery, tuiCmd, "Pick a tool interactively"), "tui")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a := state
	reg, err := a.registry()
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		a.printer.Warn("The registry is empty; nothing to pick.")
		return nil
	}

	builtin, _ := cmd.Flags().GetBool("builtin")
	var (
		name string
		ok   bool
	)
	fzfPath, lookErr := lookPath("fzf")
	if !builtin && lookErr == nil {
		logger.Debug("using fzf picker", logger.String("path", fzfPath))
		f := &tui.Fzf{Path: fzfPath, Stderr: cmd.ErrOrStderr()}
		name, ok, err = f.Pick(cmd.Context(), reg.Tools())
	} else {
		name, ok, err = tui.Pick(reg.Tools(), cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	t, err := reg.Find(name)
	if err != nil {
		return err
	}
	showInfo(a, t)
	return nil
}
