/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/RespectNoodles/HelpBox/internal/doctor"
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the shell integration",
	Long: `Add a line sourcing shell/init.sh to ~/.zshrc (when $SHELL is zsh) or
~/.bashrc. An existing toolbox line is replaced; the previous file is kept
as <file>.bak-<timestamp>. Running setup again with the same theme changes
nothing.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().String("theme", doctor.DefaultTheme, "Prompt theme profile ("+strings.Join(doctor.Themes, "|")+")")

	mustRegister(ops.RegisterCommandWithTaxonomy("setup", ops.GroupSystem, ops.CategoryEnvironment, setupCmd, "Install the shell integration"), "setup")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	a := state
	theme, _ := cmd.Flags().GetString("theme")
	if err := doctor.ValidateTheme(theme); err != nil {
		return err
	}

	home, err := userHomeDir()
	if err != nil {
		return fmt.Errorf("cannot locate home directory: %w", err)
	}
	shell, _ := tools.LookupEnv(tools.HostEnviron(), "SHELL")
	integration := doctor.NewShellIntegration(doctor.DetectShellRC(shell, home), a.paths.ShellInit)

	if a.exec.DryRun {
		a.printer.Command("ensure " + integration.RCPath + " contains: " + integration.SourceLine(theme))
		return nil
	}

	result, err := integration.InstallOrUpdate(theme)
	if err != nil {
		return err
	}
	if result.Action == doctor.SetupUnchanged {
		a.printer.Info("Shell setup already present in %s.", result.Path)
		return nil
	}
	if result.BackupPath != "" {
		a.printer.Info("Backed up %s to %s.", result.Path, result.BackupPath)
	}
	a.printer.Success("Updated shell configuration at %s.", result.Path)
	return nil
}
