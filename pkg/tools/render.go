/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"regexp"
	"strings"
)

// PrefixPlaceholder is the single key of the command template grammar.
const PrefixPlaceholder = "{prefix}"

var placeholderPattern = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// Render substitutes {prefix} with the context's absolute prefix. Any other
// brace sequence, including unknown {name} placeholders, passes through
// unchanged. Render never executes or validates the result.
func Render(template string, c ExecutionContext) string {
	return strings.ReplaceAll(template, PrefixPlaceholder, c.Prefix)
}

// UnknownPlaceholders lists {name} tokens that Render will leave in place.
func UnknownPlaceholders(template string) []string {
	var unknown []string
	seen := map[string]bool{}
	for _, m := range placeholderPattern.FindAllString(template, -1) {
		if m == PrefixPlaceholder || seen[m] {
			continue
		}
		seen[m] = true
		unknown = append(unknown, m)
	}
	return unknown
}
