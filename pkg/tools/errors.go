/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"errors"
	"fmt"
	"strings"
)

// LaunchError means the OS could not start the process at all. A command that
// starts and exits non-zero is not an error; its status is returned instead.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("Failed to run command: %s: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// MissingDependencyError reports that no candidate of a fallback list is installed.
// It is recoverable: callers warn and exit 1.
type MissingDependencyError struct {
	Action string
	Tried  []string
}

func (e *MissingDependencyError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("none of the required tools are installed (tried: %s)", strings.Join(e.Tried, ", "))
	}
	return fmt.Sprintf("%s requires one of: %s", e.Action, strings.Join(e.Tried, ", "))
}

// DeclinedError is returned when the operator does not confirm a destructive action.
type DeclinedError struct {
	Action string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("%s cancelled: confirmation declined", e.Action)
}

// IsMissingDependency reports whether err wraps a MissingDependencyError.
func IsMissingDependency(err error) bool {
	var md *MissingDependencyError
	return errors.As(err, &md)
}

// IsDeclined reports whether err wraps a DeclinedError.
func IsDeclined(err error) bool {
	var d *DeclinedError
	return errors.As(err, &d)
}
