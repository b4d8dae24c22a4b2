/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// LocalSpawner runs commands through the host shell with inherited stdio.
type LocalSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLocalSpawner creates a spawner attached to the process stdio.
func NewLocalSpawner() *LocalSpawner {
	return &LocalSpawner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// shellInvocation returns the interpreter and arguments for a shell string.
// Registry templates are trusted input and are interpreted by the shell as-is.
func shellInvocation(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// Spawn runs command and returns its exit status verbatim.
func (s *LocalSpawner) Spawn(ctx context.Context, command string, env []string) (int, error) {
	name, args := shellInvocation(command)
	// #nosec G204 -- command templates come from the operator's own registry
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal; there is no status to forward.
			code = 1
		}
		return code, nil
	}
	return -1, &LaunchError{Command: command, Err: err}
}
