/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutionContext is the per-invocation configuration every command runs under.
// It is built once from CLI flags merged over the config file and passed by value.
type ExecutionContext struct {
	Verbose bool
	DryRun  bool
	Explain bool
	Color   bool
	// Prefix is the absolute install root; its bin directory leads PATH.
	Prefix string
}

// ContextOptions are the raw inputs used to construct an ExecutionContext.
type ContextOptions struct {
	Verbose bool
	DryRun  bool
	Explain bool
	Color   bool
	// Prefix may be relative, in which case it is anchored at Root.
	Prefix string
	Root   string
}

// NewExecutionContext resolves the prefix to a clean absolute path.
func NewExecutionContext(opts ContextOptions) (ExecutionContext, error) {
	if opts.Prefix == "" {
		return ExecutionContext{}, fmt.Errorf("install prefix must not be empty")
	}
	prefix := opts.Prefix
	if !filepath.IsAbs(prefix) {
		prefix = filepath.Join(opts.Root, prefix)
	}
	abs, err := filepath.Abs(prefix)
	if err != nil {
		return ExecutionContext{}, fmt.Errorf("failed to resolve prefix %q: %w", opts.Prefix, err)
	}
	return ExecutionContext{
		Verbose: opts.Verbose,
		DryRun:  opts.DryRun,
		Explain: opts.Explain,
		Color:   opts.Color,
		Prefix:  abs,
	}, nil
}

// BinDir is the prefix directory injected at the front of PATH.
func (c ExecutionContext) BinDir() string {
	return filepath.Join(c.Prefix, "bin")
}

// TmpDir is scratch space for installers that download archives.
func (c ExecutionContext) TmpDir() string {
	return filepath.Join(c.Prefix, "tmp")
}

// EnsurePrefix creates the bin and tmp directories under the prefix.
func EnsurePrefix(c ExecutionContext) error {
	for _, dir := range []string{c.BinDir(), c.TmpDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
