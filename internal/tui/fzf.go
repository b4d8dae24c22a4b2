package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/registry"
)

// FzfLines renders one "name<TAB>category<TAB>description" line per tool.
func FzfLines(tools []registry.ToolRecord) string {
	var b strings.Builder
	for _, t := range tools {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", t.Name, t.Category, t.Description)
	}
	return b.String()
}

// ParseSelection returns the tool name of the line fzf printed.
func ParseSelection(output string) string {
	line := strings.TrimSpace(output)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	name, _, _ := strings.Cut(line, "\t")
	return strings.TrimSpace(name)
}

// Fzf drives an installed fzf binary as the picker.
type Fzf struct {
	Path string
	// Stderr receives fzf's interface; fzf opens the terminal itself for keys.
	Stderr io.Writer
}

// Pick feeds the catalog to fzf and returns the selected name. Exit status 1
// (no match) and 130 (cancelled) are reported as no selection.
func (f *Fzf) Pick(ctx context.Context, tools []registry.ToolRecord) (string, bool, error) {
	// #nosec G204 -- Path comes from the resolver, arguments are fixed
	cmd := exec.CommandContext(ctx, f.Path, "--ansi")
	cmd.Stdin = strings.NewReader(FzfLines(tools))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = f.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == 1 || code == 130 {
			logger.Debug("fzf exited without selection", logger.Int("exit_code", code))
			return "", false, nil
		}
		return "", false, fmt.Errorf("fzf exited with status %d", code)
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to run fzf: %w", err)
	}

	name := ParseSelection(out.String())
	return name, name != "", nil
}
