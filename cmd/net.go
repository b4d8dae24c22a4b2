/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"strings"

	"github.com/RespectNoodles/HelpBox/internal/netdiag"
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/exitcode"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Network diagnostics",
	Long: `Network diagnostics. Each action runs the first installed of several
equivalent programs and always shows the command it runs. flush-dns and
restart-network ask for confirmation every time.`,
}

func init() {
	for _, action := range netdiag.Actions() {
		netCmd.AddCommand(newNetActionCommand(action))
	}

	mustRegister(ops.RegisterCommandWithTaxonomy("net", ops.GroupSystem, ops.CategoryDiagnostics, netCmd, "Network diagnostics with fallback tools"), "net")
	rootCmd.AddCommand(netCmd)
}

func newNetActionCommand(action netdiag.Action) *cobra.Command {
	use := action.Name
	posArgs := cobra.NoArgs
	switch {
	case action.HostArg && action.DefaultHost != "":
		use += " [host]"
		posArgs = cobra.MaximumNArgs(1)
	case action.HostArg:
		use += " <host>"
		posArgs = cobra.ExactArgs(1)
	}

	tried := strings.Join(tools.Executables(action.Candidates("HOST")), ", ")
	return &cobra.Command{
		Use:   use,
		Short: action.Summary,
		Long:  action.Summary + ".\nTries in order: " + tried + ".",
		Args:  posArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := state
			host := ""
			if len(args) > 0 {
				host = args[0]
			}
			d := &netdiag.Diagnostics{Resolver: a.resolver, Runner: a.runner, Confirm: confirmer(cmd)}
			code, err := d.Run(cmd.Context(), action.Name, host)
			if tools.IsMissingDependency(err) || tools.IsDeclined(err) {
				a.printer.Warn("%v", err)
				return &ExitError{Code: exitcode.Failure}
			}
			return exitWith(code, err)
		},
	}
}
