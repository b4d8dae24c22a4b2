/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"os/exec"
	"strings"
	"unicode"

	"github.com/RespectNoodles/HelpBox/pkg/logger"
)

// CandidateList is an ordered set of functionally equivalent command
// templates. Order is the caller's preference; the resolver never reorders.
type CandidateList []string

// LookPathFunc resolves an executable name the way the shell would.
type LookPathFunc func(file string) (string, error)

// Resolver answers "is this executable on PATH" and picks among candidates.
type Resolver struct {
	LookPath LookPathFunc
}

// NewResolver returns a resolver backed by exec.LookPath.
func NewResolver() *Resolver {
	return &Resolver{LookPath: exec.LookPath}
}

// LeadingExecutable returns the first whitespace-delimited token of a template.
func LeadingExecutable(template string) string {
	s := strings.TrimLeftFunc(template, unicode.IsSpace)
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}

// IsAvailable reports whether name resolves through PATH lookup.
func (r *Resolver) IsAvailable(name string) bool {
	if name == "" {
		return false
	}
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(name)
	if err != nil {
		logger.Debug("executable not found", logger.String("name", name))
		return false
	}
	logger.Debug("executable resolved", logger.String("name", name), logger.String("path", path))
	return true
}

// PickAvailable returns the first candidate whose leading executable resolves.
// It is strictly first-match; ok is false when nothing resolves.
func (r *Resolver) PickAvailable(candidates CandidateList) (string, bool) {
	for _, candidate := range candidates {
		if r.IsAvailable(LeadingExecutable(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// Require is PickAvailable with the miss turned into a MissingDependencyError
// naming every executable that was tried.
func (r *Resolver) Require(action string, candidates CandidateList) (string, error) {
	if picked, ok := r.PickAvailable(candidates); ok {
		return picked, nil
	}
	return "", &MissingDependencyError{Action: action, Tried: Executables(candidates)}
}

// Executables lists the distinct leading executables of candidates in order.
func Executables(candidates CandidateList) []string {
	seen := make(map[string]bool, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		name := LeadingExecutable(c)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
