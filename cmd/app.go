/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/RespectNoodles/HelpBox/internal/console"
	"github.com/RespectNoodles/HelpBox/pkg/config"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
)

// app is the per-invocation state shared by every subcommand.
type app struct {
	paths      config.Paths
	cfg        *config.Config
	configUsed string
	exec       tools.ExecutionContext
	printer    *console.Printer
	runner     *tools.Runner
	resolver   *tools.Resolver
}

var (
	state *app

	newSpawner  = func() tools.Spawner { return tools.NewLocalSpawner() }
	lookPath    = tools.LookPathFunc(exec.LookPath)
	isRoot      = func() bool { return os.Geteuid() == 0 }
	userHomeDir = os.UserHomeDir
)

// loadApp merges CLI flags over the config file and builds the execution
// context. Flags win whenever they were given explicitly.
func loadApp(cmd *cobra.Command) error {
	flags := cmd.Flags()

	root, err := config.FindRoot()
	if err != nil {
		return err
	}
	paths := config.NewPaths(root)

	configFile, _ := flags.GetString("config")
	cfg, used, err := config.LoadConfig(paths, configFile)
	if err != nil {
		return err
	}

	verbose := cfg.Verbose
	if flags.Changed("verbose") {
		verbose, _ = flags.GetBool("verbose")
	}
	prefix := cfg.Prefix
	if flags.Changed("prefix") {
		prefix, _ = flags.GetString("prefix")
	}
	dryRun, _ := flags.GetBool("dry-run")
	explain, _ := flags.GetBool("explain")
	noColor, _ := flags.GetBool("no-color")

	ec, err := tools.NewExecutionContext(tools.ContextOptions{
		Verbose: verbose,
		DryRun:  dryRun,
		Explain: explain,
		Color:   cfg.Color && !noColor,
		Prefix:  prefix,
		Root:    root,
	})
	if err != nil {
		return err
	}

	printer := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), ec.Color)
	state = &app{
		paths:      paths,
		cfg:        cfg,
		configUsed: used,
		exec:       ec,
		printer:    printer,
		runner:     &tools.Runner{Context: ec, Spawner: newSpawner(), Reporter: printer},
		resolver:   &tools.Resolver{LookPath: lookPath},
	}
	logger.Debug("execution context ready",
		logger.String("root", root),
		logger.String("prefix", ec.Prefix),
		logger.Bool("verbose", ec.Verbose),
		logger.Bool("dry_run", ec.DryRun),
		logger.Bool("explain", ec.Explain))
	return nil
}

func (a *app) registry() (*registry.Registry, error) {
	return registry.Load(a.paths.Registry)
}

func (a *app) find(name string) (registry.ToolRecord, error) {
	reg, err := a.registry()
	if err != nil {
		return registry.ToolRecord{}, err
	}
	return reg.Find(name)
}

func (a *app) installed(t registry.ToolRecord) bool {
	return a.resolver.IsAvailable(t.Name)
}

// confirmer prompts on the command's streams; every call asks again.
func confirmer(cmd *cobra.Command) func(string) bool {
	return func(prompt string) bool {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return console.Confirm(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
	}
}

// exitWith turns a forwarded tool status into the command result.
func exitWith(code int, err error) error {
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func printTools(a *app, records []registry.ToolRecord) {
	rows := make([][]console.Cell, 0, len(records))
	for _, t := range records {
		status := console.Cell{Text: "installed", Style: console.StyleGood}
		if !a.installed(t) {
			status = console.Cell{Text: "missing", Style: console.StyleBad}
		}
		rows = append(rows, []console.Cell{
			{Text: t.Name, Style: console.StyleBold},
			console.Plain(t.Category),
			status,
			console.Plain(t.Description),
		})
	}
	a.printer.Table(rows)
}

func mustRegister(err error, name string) {
	if err != nil {
		panic(fmt.Sprintf("Failed to register %s command: %v", name, err))
	}
}
