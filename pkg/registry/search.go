package registry

import (
	"strings"

	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
)

const globMeta = "*?[{"

// Search returns records whose name, category or description contains query,
// compared case-insensitively. A query with glob metacharacters additionally
// matches names and categories as a doublestar pattern.
func (r *Registry) Search(query string) []ToolRecord {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	glob := strings.ContainsAny(q, globMeta) && doublestar.ValidatePattern(q)

	var matches []ToolRecord
	for _, t := range r.tools {
		name := fold.String(t.Name)
		category := fold.String(t.Category)
		if strings.Contains(name, q) ||
			strings.Contains(category, q) ||
			strings.Contains(fold.String(t.Description), q) {
			matches = append(matches, t)
			continue
		}
		if glob && (globMatch(q, name) || globMatch(q, category)) {
			matches = append(matches, t)
		}
	}
	logger.Debug("registry search", logger.String("query", query), logger.Bool("glob", glob), logger.Int("matches", len(matches)))
	return matches
}

func globMatch(pattern, s string) bool {
	ok, err := doublestar.Match(pattern, s)
	return err == nil && ok
}

// Categories returns distinct categories in first-seen order.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range r.tools {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// ByCategory returns the records in category, in registry order.
func (r *Registry) ByCategory(category string) []ToolRecord {
	var out []ToolRecord
	for _, t := range r.tools {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
