/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/internal/selfupdate"
	"github.com/spf13/cobra"
)

var selfUpdateCmd = &cobra.Command{
	Use:   "self-update",
	Short: "Pull the latest toolbox when installed from git",
	Long: `Run 'git pull' in the toolbox deployment root after confirmation.
Nothing happens when the root is not a git checkout or has uncommitted
changes.`,
	Args: cobra.NoArgs,
	RunE: runSelfUpdate,
}

func init() {
	mustRegister(ops.RegisterCommandWithTaxonomy("self-update", ops.GroupSystem, ops.CategoryEnvironment, selfUpdateCmd, "Pull the latest toolbox when installed from git"), "self-update")
	rootCmd.AddCommand(selfUpdateCmd)
}

func runSelfUpdate(cmd *cobra.Command, _ []string) error {
	a := state
	u := &selfupdate.Updater{Root: a.paths.Root, Runner: a.runner, Confirm: confirmer(cmd)}
	outcome, code, err := u.Run(cmd.Context())
	if err != nil {
		return err
	}
	switch outcome {
	case selfupdate.SkippedNotRepo, selfupdate.SkippedDirty:
		a.printer.Warn("%s", outcome)
	case selfupdate.Cancelled:
		a.printer.Info("%s", outcome)
	}
	return exitWith(code, nil)
}
