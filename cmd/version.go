/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"
	"runtime"

	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/buildinfo"
	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"
)

var checkLatest = latest.Check

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the toolbox version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
	versionCmd.Flags().Bool("extended", false, "Show Go runtime and platform")

	mustRegister(ops.RegisterCommandWithTaxonomy("version", ops.GroupSupport, ops.CategoryInformation, versionCmd, "Show the toolbox version"), "version")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	a := state
	current := buildinfo.Version()
	a.printer.Println("toolbox %s", current)

	if extended, _ := cmd.Flags().GetBool("extended"); extended {
		a.printer.Println("  go: %s", runtime.Version())
		a.printer.Println("  platform: %s/%s", runtime.GOOS, runtime.GOARCH)
		if mv := buildinfo.ModuleVersion(); mv != "" {
			a.printer.Println("  module: %s", mv)
		}
	}

	if check, _ := cmd.Flags().GetBool("check"); !check {
		return nil
	}
	if current == "dev" {
		a.printer.Info("Development build; skipping update check.")
		return nil
	}

	res, err := checkLatest(&latest.GithubTag{Owner: "RespectNoodles", Repository: "HelpBox"}, current)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if res.Outdated {
		a.printer.Warn("A new version is available: %s (you have %s)", res.Current, current)
		a.printer.Println("Run 'toolbox self-update' or download it from https://github.com/RespectNoodles/HelpBox/releases")
		return nil
	}
	a.printer.Success("You are using the latest version: %s", current)
	return nil
}
