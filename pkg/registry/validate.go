package registry

import (
	"fmt"
	"strings"

	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"mvdan.cc/sh/v3/syntax"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a problem found in a registry record.
type Issue struct {
	Tool     string
	Field    string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.Tool, i.Message)
	}
	return fmt.Sprintf("%s.%s: %s", i.Tool, i.Field, i.Message)
}

// ValidateRecord checks a record's command templates. Templates are still run
// as written; issues are advisory.
func ValidateRecord(rec ToolRecord) []Issue {
	var issues []Issue
	fields := []struct {
		name     string
		template string
	}{
		{"install", rec.Install},
		{"update", rec.Update},
		{"verify", rec.Verify},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.template) == "" {
			issues = append(issues, Issue{Tool: rec.Name, Field: f.name, Severity: SeverityWarning, Message: "no command defined"})
			continue
		}
		if unknown := tools.UnknownPlaceholders(f.template); len(unknown) > 0 {
			issues = append(issues, Issue{
				Tool:     rec.Name,
				Field:    f.name,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("unrecognized placeholders left as-is: %s", strings.Join(unknown, ", ")),
			})
		}
		parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
		if _, err := parser.Parse(strings.NewReader(f.template), rec.Name+"."+f.name); err != nil {
			issues = append(issues, Issue{
				Tool:     rec.Name,
				Field:    f.name,
				Severity: SeverityError,
				Message:  fmt.Sprintf("shell syntax: %v", err),
			})
		}
	}
	return issues
}

// Validate checks every record plus registry-wide name uniqueness. A
// duplicated name is reported once, at its second occurrence.
func (r *Registry) Validate() []Issue {
	var issues []Issue
	seen := make(map[string]int)
	for _, t := range r.tools {
		seen[t.Name]++
		if seen[t.Name] == 2 {
			issues = append(issues, Issue{
				Tool:     t.Name,
				Severity: SeverityError,
				Message:  "duplicate tool name; lookups use the first entry",
			})
		}
		issues = append(issues, ValidateRecord(t)...)
	}
	return issues
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
