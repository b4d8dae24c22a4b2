/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package ops

import (
	"fmt"
	"sort"
	"strings"
)

// CommandClassification is the group and category a command is expected to carry.
type CommandClassification struct {
	Group    CommandGroup
	Category CommandCategory
}

// ErrorType tells which check produced a ValidationError.
type ErrorType int

const (
	ErrorTypeCoreCommand ErrorType = iota
	ErrorTypeExtensionWarning
	ErrorTypeTaxonomyConsistency
)

// ErrorSeverity grades a ValidationError.
type ErrorSeverity int

const (
	SeverityError ErrorSeverity = iota
	SeverityWarning
	SeverityInfo
)

var severityNames = map[ErrorSeverity]string{
	SeverityError:   "ERROR",
	SeverityWarning: "WARNING",
	SeverityInfo:    "INFO",
}

// ValidationError is one taxonomy problem.
type ValidationError struct {
	Type     ErrorType
	Severity ErrorSeverity
	Command  string
	Message  string
}

func (e ValidationError) Error() string {
	name, ok := severityNames[e.Severity]
	if !ok {
		name = "UNKNOWN"
	}
	return fmt.Sprintf("[%s] %s: %s", name, e.Command, e.Message)
}

// TaxonomyValidator checks that toolbox commands are registered where the
// grouped help expects them.
type TaxonomyValidator struct {
	core    map[string]CommandClassification
	allowed map[CommandGroup]map[CommandCategory]bool
}

// NewTaxonomyValidator uses the built-in command table.
func NewTaxonomyValidator() *TaxonomyValidator {
	allowed := make(map[CommandGroup]map[CommandCategory]bool)
	for group, cats := range allowedCategories {
		allowed[group] = make(map[CommandCategory]bool, len(cats))
		for _, c := range cats {
			allowed[group][c] = true
		}
	}
	return &TaxonomyValidator{core: coreCommands(), allowed: allowed}
}

// Validate returns problems ordered by command name: missing or misfiled
// core commands and disallowed group/category pairs are errors, commands
// outside the core table are warnings.
func (v *TaxonomyValidator) Validate(registry *Registry) []ValidationError {
	var out []ValidationError

	for _, name := range sortedKeys(v.core) {
		want := v.core[name]
		got, ok := registry.GetCommand(name)
		if !ok {
			out = append(out, coreError(name, "Core command is not registered"))
			continue
		}
		if got.Group != want.Group {
			out = append(out, coreError(name, fmt.Sprintf("Incorrect group: expected %s, got %s", want.Group, got.Group)))
		}
		if got.Category != want.Category {
			out = append(out, coreError(name, fmt.Sprintf("Incorrect category: expected %s, got %s", want.Category, got.Category)))
		}
	}

	all := registry.GetAllCommands()
	for _, name := range sortedKeys(all) {
		reg := all[name]
		cats, groupOK := v.allowed[reg.Group]
		switch {
		case !groupOK:
			out = append(out, ValidationError{
				Type:     ErrorTypeTaxonomyConsistency,
				Severity: SeverityError,
				Command:  name,
				Message:  fmt.Sprintf("Uses invalid group: %s", reg.Group),
			})
		case !cats[reg.Category]:
			out = append(out, ValidationError{
				Type:     ErrorTypeTaxonomyConsistency,
				Severity: SeverityError,
				Command:  name,
				Message:  fmt.Sprintf("Category %s not allowed for group %s", reg.Category, reg.Group),
			})
		}
		if _, core := v.core[name]; !core {
			out = append(out, ValidationError{
				Type:     ErrorTypeExtensionWarning,
				Severity: SeverityWarning,
				Command:  name,
				Message:  "Not a core toolbox command",
			})
		}
	}
	return out
}

func coreError(name, msg string) ValidationError {
	return ValidationError{Type: ErrorTypeCoreCommand, Severity: SeverityError, Command: name, Message: msg}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func coreCommands() map[string]CommandClassification {
	return map[string]CommandClassification{
		"list":        {GroupCatalog, CategoryDiscovery},
		"search":      {GroupCatalog, CategoryDiscovery},
		"info":        {GroupCatalog, CategoryDiscovery},
		"presets":     {GroupCatalog, CategoryDiscovery},
		"tui":         {GroupCatalog, CategoryDiscovery},
		"export":      {GroupCatalog, CategoryTransfer},
		"import":      {GroupCatalog, CategoryTransfer},
		"install":     {GroupTools, CategoryLifecycle},
		"update":      {GroupTools, CategoryLifecycle},
		"verify":      {GroupTools, CategoryLifecycle},
		"doctor":      {GroupSystem, CategoryDiagnostics},
		"net":         {GroupSystem, CategoryDiagnostics},
		"setup":       {GroupSystem, CategoryEnvironment},
		"self-update": {GroupSystem, CategoryEnvironment},
		"version":     {GroupSupport, CategoryInformation},
	}
}

var allowedCategories = map[CommandGroup][]CommandCategory{
	GroupCatalog: {CategoryDiscovery, CategoryTransfer},
	GroupTools:   {CategoryLifecycle},
	GroupSystem:  {CategoryDiagnostics, CategoryEnvironment},
	GroupSupport: {CategoryInformation},
}

// FilterErrors returns errors of a specific type
func FilterErrors(errors []ValidationError, errorType ErrorType) []ValidationError {
	var filtered []ValidationError
	for _, err := range errors {
		if err.Type == errorType {
			filtered = append(filtered, err)
		}
	}
	return filtered
}

// FilterErrorsBySeverity returns errors of a specific severity
func FilterErrorsBySeverity(errors []ValidationError, severity ErrorSeverity) []ValidationError {
	var filtered []ValidationError
	for _, err := range errors {
		if err.Severity == severity {
			filtered = append(filtered, err)
		}
	}
	return filtered
}

// FormatErrors renders errors as a numbered list.
func FormatErrors(errors []ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors found"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d validation errors:\n", len(errors))
	for i, err := range errors {
		fmt.Fprintf(&b, "%d. %s\n", i+1, err.Error())
	}
	return b.String()
}
