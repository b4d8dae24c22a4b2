/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"os"

	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/buildinfo"
	"github.com/RespectNoodles/HelpBox/pkg/exitcode"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/spf13/cobra"
)

// newRootCommand creates a fresh root command instance.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Portable tool registry manager",
		Long: `toolbox reads a declarative catalog of command-line tools and lists,
searches, installs, updates and verifies them by running the commands
recorded in the registry.

Examples:
   toolbox list                     # Every tool with its install status
   toolbox search json              # Match name, category or description
   toolbox --dry-run install fd     # Show the install command without running it
   toolbox doctor                   # Dependencies and PATH hygiene
   toolbox net dns-test example.com # First installed of dig, nslookup, host`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initializeLogger(cmd)
			return loadApp(cmd)
		},
	}

	cmd.PersistentFlags().Bool("verbose", false, "Show commands before execution")
	cmd.PersistentFlags().Bool("dry-run", false, "Print commands without running them")
	cmd.PersistentFlags().Bool("explain", false, "Explain each step before running it")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("prefix", "", "Install prefix for the portable PATH (default from config: ./.tools)")
	cmd.PersistentFlags().String("config", "", "Config file (default <root>/.config/toolbox.json)")
	cmd.PersistentFlags().String("log-level", "warn", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")

	cmd.Version = buildinfo.Version()
	cmd.SetVersionTemplate("toolbox {{.Version}}\n")

	// Grouped help for the root; subcommands keep cobra's usage layout.
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if c.HasParent() {
			if c.Long != "" {
				c.Println(c.Long)
			} else {
				c.Println(c.Short)
			}
			c.Println()
			c.Print(c.UsageString())
			return
		}
		reg := ops.GetRegistry()
		c.Println(c.Long)
		for _, g := range ops.Groups() {
			cmds := reg.GetCommandsByGroup(g.Group)
			if len(cmds) == 0 {
				continue
			}
			c.Println()
			c.Println(g.Title + ":")
			for _, rc := range cmds {
				c.Printf("  %-12s %s\n", rc.Name, rc.Description)
			}
		}
		c.Println()
		c.Println("Flags:")
		c.Print(c.LocalFlags().FlagUsages())
	})

	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	config := logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "toolbox",
		DryRun:    dryRun,
		Output:    cmd.ErrOrStderr(),
	}

	if err := logger.Initialize(config); err != nil {
		if _, writeErr := os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n"); writeErr != nil {
			_ = writeErr
		}
		os.Exit(exitcode.ConfigError)
	}
}
