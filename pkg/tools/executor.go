/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"context"

	"github.com/RespectNoodles/HelpBox/pkg/logger"
)

// Spawner starts a rendered shell command and waits for it. Implementations
// return the exit status of the process, or an error only when the process
// could not be launched.
type Spawner interface {
	Spawn(ctx context.Context, command string, env []string) (int, error)
}

// Reporter receives the human-facing lines the runner prints before executing.
type Reporter interface {
	// Explain prints a rationale line.
	Explain(reason string)
	// Command prints the literal rendered command.
	Command(rendered string)
}

// Runner executes command templates under an ExecutionContext. It is a
// transparent pass-through: no retries, no rollback.
type Runner struct {
	Context  ExecutionContext
	Spawner  Spawner
	Reporter Reporter
	// Environ supplies the inherited environment; nil means HostEnviron.
	Environ func() []string
}

// NewRunner wires a runner with the local shell spawner.
func NewRunner(c ExecutionContext, reporter Reporter) *Runner {
	return &Runner{
		Context:  c,
		Spawner:  NewLocalSpawner(),
		Reporter: reporter,
	}
}

// Env returns the environment every spawned command receives.
func (r *Runner) Env() []string {
	environ := r.Environ
	if environ == nil {
		environ = HostEnviron
	}
	return BuildEnv(r.Context, environ())
}

// Run renders template and executes it according to the context modes:
// the rationale is shown only with --explain, the command only with
// --verbose or --dry-run, and --dry-run returns 0 without spawning.
func (r *Runner) Run(ctx context.Context, template, reason string) (int, error) {
	if reason != "" && r.Context.Explain {
		r.explain(reason)
	}
	rendered := Render(template, r.Context)
	if r.Context.Verbose || r.Context.DryRun {
		r.command(rendered)
	}
	return r.execute(ctx, rendered)
}

// RunLogged always shows the rationale and the rendered command before
// executing. It is used for probes and disruptive operations where the
// operator must see what runs regardless of verbosity. Dry-run still applies.
func (r *Runner) RunLogged(ctx context.Context, template, reason string) (int, error) {
	if reason != "" {
		r.explain(reason)
	}
	rendered := Render(template, r.Context)
	r.command(rendered)
	return r.execute(ctx, rendered)
}

func (r *Runner) execute(ctx context.Context, rendered string) (int, error) {
	if r.Context.DryRun {
		logger.Debug("dry-run: command not executed", logger.String("command", rendered))
		return 0, nil
	}
	spawner := r.Spawner
	if spawner == nil {
		spawner = NewLocalSpawner()
	}
	logger.Debug("spawning command", logger.String("command", rendered), logger.String("prefix", r.Context.Prefix))
	code, err := spawner.Spawn(ctx, rendered, r.Env())
	if err != nil {
		return code, err
	}
	logger.Debug("command finished", logger.String("command", rendered), logger.Int("exit_code", code))
	return code, nil
}

func (r *Runner) explain(reason string) {
	if r.Reporter != nil {
		r.Reporter.Explain(reason)
	}
}

func (r *Runner) command(rendered string) {
	if r.Reporter != nil {
		r.Reporter.Command(rendered)
	}
}
