package registry

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 3

// suggest ranks registry names close to name: subsequence matches first,
// then names within a small edit distance.
func suggest(name string, names []string) []string {
	if strings.TrimSpace(name) == "" || len(names) == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	add := func(n string) {
		if !seen[n] && len(out) < maxSuggestions {
			seen[n] = true
			out = append(out, n)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)
	for _, r := range ranks {
		add(r.Target)
	}

	lower := strings.ToLower(name)
	for _, n := range names {
		if fuzzy.LevenshteinDistance(lower, strings.ToLower(n)) <= 2 {
			add(n)
		}
	}
	return out
}
