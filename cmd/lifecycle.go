/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/exitcode"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <tool>",
	Short: "Install a tool with its registry command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd.Context(), args[0], installTool)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [tool]",
	Short: "Update a tool, or every tool with --all",
	Long: `Update a tool with its registry command. With --all every tool in the
registry is updated in order; failures do not stop the run and are listed
in the summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <tool>",
	Short: "Run a tool's verify command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd.Context(), args[0], verifyTool)
	},
}

func init() {
	updateCmd.Flags().Bool("all", false, "Update every tool in the registry")

	mustRegister(ops.RegisterCommandWithTaxonomy("install", ops.GroupTools, ops.CategoryLifecycle, installCmd, "Install a tool with its registry command"), "install")
	mustRegister(ops.RegisterCommandWithTaxonomy("update", ops.GroupTools, ops.CategoryLifecycle, updateCmd, "Update a tool, or every tool with --all"), "update")
	mustRegister(ops.RegisterCommandWithTaxonomy("verify", ops.GroupTools, ops.CategoryLifecycle, verifyCmd, "Run a tool's verify command"), "verify")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(verifyCmd)
}

type lifecycleFunc func(ctx context.Context, a *app, t registry.ToolRecord) (int, error)

func runLifecycle(ctx context.Context, name string, fn lifecycleFunc) error {
	a := state
	t, err := a.find(name)
	if err != nil {
		return err
	}
	return exitWith(fn(ctx, a, t))
}

func installTool(ctx context.Context, a *app, t registry.ToolRecord) (int, error) {
	if err := prepare(a, t, "install"); err != nil {
		return exitcode.Failure, err
	}
	return a.runner.Run(ctx, t.Install, fmt.Sprintf("Installing %s using %s.", t.Name, t.Source))
}

func updateTool(ctx context.Context, a *app, t registry.ToolRecord) (int, error) {
	if err := prepare(a, t, "update"); err != nil {
		return exitcode.Failure, err
	}
	return a.runner.Run(ctx, t.Update, fmt.Sprintf("Updating %s using %s.", t.Name, t.Source))
}

func verifyTool(ctx context.Context, a *app, t registry.ToolRecord) (int, error) {
	if !a.installed(t) {
		a.printer.Warn("%s is not installed (missing from PATH).", t.Name)
	}
	return a.runner.Run(ctx, t.Verify, fmt.Sprintf("Verifying %s using registry verify command.", t.Name))
}

// prepare creates the prefix directories (also under --dry-run) and warns
// when a root-only tool is handled by an unprivileged user.
func prepare(a *app, t registry.ToolRecord, action string) error {
	if err := tools.EnsurePrefix(a.exec); err != nil {
		return err
	}
	if t.RequiresRoot && !isRoot() {
		a.printer.Warn("%s may require root privileges for %s.", t.Name, action)
	}
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	switch {
	case all && len(args) > 0:
		return fmt.Errorf("update takes either a tool name or --all, not both")
	case !all && len(args) == 0:
		return fmt.Errorf("update requires a tool name or --all")
	case !all:
		return runLifecycle(cmd.Context(), args[0], updateTool)
	}

	a := state
	reg, err := a.registry()
	if err != nil {
		return err
	}

	var failed []string
	for _, t := range reg.Tools() {
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}
		a.printer.Println("%s", a.printer.Bold("==> "+t.Name))
		code, err := updateTool(cmd.Context(), a, t)
		if err != nil {
			logger.Warn("update failed", logger.String("tool", t.Name), logger.Err(err))
			a.printer.Error("%s: %v", t.Name, err)
			failed = append(failed, t.Name)
			continue
		}
		if code != 0 {
			logger.Warn("update exited non-zero", logger.String("tool", t.Name), logger.Int("exit_code", code))
			failed = append(failed, fmt.Sprintf("%s (exit %d)", t.Name, code))
		}
	}

	lines := []string{fmt.Sprintf("Updated %d of %d tools", reg.Len()-len(failed), reg.Len())}
	for _, f := range failed {
		lines = append(lines, "failed: "+f)
	}
	a.printer.Println("")
	a.printer.Box(lines)
	if len(failed) > 0 {
		return &ExitError{Code: exitcode.Failure}
	}
	return nil
}
