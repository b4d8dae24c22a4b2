/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"github.com/RespectNoodles/HelpBox/internal/console"
	"github.com/RespectNoodles/HelpBox/internal/doctor"
	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies and PATH hygiene",
	Long: `Check that common installer dependencies are on PATH, show the files
toolbox reads, and report duplicate or missing PATH segments.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	mustRegister(ops.RegisterCommandWithTaxonomy("doctor", ops.GroupSystem, ops.CategoryDiagnostics, doctorCmd, "Check system dependencies and PATH hygiene"), "doctor")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	a := state
	p := a.printer

	statuses := doctor.CheckDependencies(doctor.KnownDependencies(), lookPath)
	rows := make([][]console.Cell, 0, len(statuses))
	for _, s := range statuses {
		status := console.Cell{Text: "ok", Style: console.StyleGood}
		if !s.Present {
			status = console.Cell{Text: "missing", Style: console.StyleBad}
		}
		rows = append(rows, []console.Cell{{Text: s.Name, Style: console.StyleBold}, status, console.Plain(s.Purpose)})
	}
	p.Table(rows)
	p.Println("")

	configPath := a.configUsed
	if configPath == "" {
		configPath = a.paths.Config
	}
	p.Println("Config: %s", configPath)
	p.Println("Registry: %s", a.paths.Registry)
	p.Println("Prefix: %s", a.exec.Prefix)
	p.Println("")

	environ := tools.HostEnviron()
	pathValue, _ := tools.LookupEnv(environ, "PATH")
	home, err := userHomeDir()
	if err != nil {
		logger.Debug("home directory unavailable; ~ stays unexpanded", logger.Err(err))
	}
	report := doctor.DiagnosePath(pathValue, doctor.PathOptions{Environ: environ, HomeDir: home})
	printPathReport(a, report)
	return nil
}

func printPathReport(a *app, report doctor.PathReport) {
	p := a.printer
	p.Println("%s", p.Bold("PATH diagnostics"))
	if len(report.Duplicates) > 0 {
		p.Warn("Duplicate PATH entries:")
		for _, entry := range report.Duplicates {
			p.Println("  - %s", entry)
		}
	} else {
		p.Success("No duplicate PATH entries found.")
	}

	if len(report.Missing) > 0 {
		p.Warn("PATH segments that do not exist:")
		for _, entry := range report.Missing {
			p.Println("  - %s", entry)
		}
	} else {
		p.Success("All PATH segments exist.")
	}

	if !report.Contains(a.exec.BinDir()) {
		p.Info("Prefix bin %s is not on your shell PATH; run 'toolbox setup' to add it.", a.exec.BinDir())
	}
}
