package doctor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/RespectNoodles/HelpBox/pkg/tools"
)

// PathEntry is one PATH segment as written and after expansion.
type PathEntry struct {
	Raw        string
	Normalized string
}

// PathReport is the outcome of DiagnosePath. Duplicates and Missing hold
// normalized entries in first-occurrence order.
type PathReport struct {
	Entries    []PathEntry
	Duplicates []string
	Missing    []string
}

// Contains reports whether dir (compared after cleaning) is one of the entries.
func (r PathReport) Contains(dir string) bool {
	want := filepath.Clean(dir)
	for _, e := range r.Entries {
		if filepath.Clean(e.Normalized) == want {
			return true
		}
	}
	return false
}

// PathOptions supplies the environment DiagnosePath works against.
type PathOptions struct {
	// Environ resolves $VAR and ${VAR}.
	Environ []string
	// HomeDir replaces a leading ~.
	HomeDir string
	// IsDir defaults to os.Stat.
	IsDir func(string) bool
	// Separator defaults to os.PathListSeparator.
	Separator rune
}

// DiagnosePath splits pathValue, drops empty segments and expands ~ and
// environment variables. No symlink or relative path resolution is done.
// An entry is reported as duplicate once, when its second occurrence is seen.
func DiagnosePath(pathValue string, opts PathOptions) PathReport {
	sep := opts.Separator
	if sep == 0 {
		sep = os.PathListSeparator
	}
	isDir := opts.IsDir
	if isDir == nil {
		isDir = statIsDir
	}

	var report PathReport
	counts := make(map[string]int)
	missingSeen := make(map[string]bool)

	for _, raw := range strings.Split(pathValue, string(sep)) {
		if raw == "" {
			continue
		}
		normalized := NormalizeEntry(raw, opts)
		report.Entries = append(report.Entries, PathEntry{Raw: raw, Normalized: normalized})

		counts[normalized]++
		if counts[normalized] == 2 {
			report.Duplicates = append(report.Duplicates, normalized)
		}
		if !isDir(normalized) && !missingSeen[normalized] {
			missingSeen[normalized] = true
			report.Missing = append(report.Missing, normalized)
		}
	}
	return report
}

// NormalizeEntry expands a leading ~ and $VAR/${VAR} references. Variables
// absent from opts.Environ are left in place as ${VAR}.
func NormalizeEntry(entry string, opts PathOptions) string {
	out := entry
	if opts.HomeDir != "" && (out == "~" || strings.HasPrefix(out, "~/") || strings.HasPrefix(out, `~\`)) {
		out = opts.HomeDir + out[1:]
	}
	if strings.Contains(out, "$") {
		out = os.Expand(out, func(name string) string {
			if v, ok := tools.LookupEnv(opts.Environ, name); ok {
				return v
			}
			return "${" + name + "}"
		})
	}
	return out
}

func statIsDir(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}
