package doctor

import (
	"os/exec"
	"strings"

	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
)

// Dependency is a host program the toolbox relies on to install or pick tools.
type Dependency struct {
	Name    string
	Purpose string
}

// Status is the result of checking one dependency.
type Status struct {
	Name    string
	Purpose string
	Present bool
	Path    string
}

// KnownDependencies returns the host programs reported by doctor, in display order.
func KnownDependencies() []Dependency {
	return []Dependency{
		{Name: "apt-get", Purpose: "system packages"},
		{Name: "pip", Purpose: "python packages"},
		{Name: "go", Purpose: "go install"},
		{Name: "cargo", Purpose: "rust crates"},
		{Name: "git", Purpose: "source checkouts and self-update"},
		{Name: "curl", Purpose: "downloads"},
		{Name: "fzf", Purpose: "interactive picker"},
	}
}

// GetDependencyByName looks up a known dependency, ignoring case.
func GetDependencyByName(name string) (Dependency, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, d := range KnownDependencies() {
		if d.Name == n {
			return d, true
		}
	}
	return Dependency{}, false
}

// CheckDependencies resolves each dependency on PATH. A nil lookPath uses exec.LookPath.
func CheckDependencies(deps []Dependency, lookPath tools.LookPathFunc) []Status {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	out := make([]Status, 0, len(deps))
	for _, d := range deps {
		st := Status{Name: d.Name, Purpose: d.Purpose}
		if p, err := lookPath(d.Name); err == nil {
			st.Present = true
			st.Path = p
		}
		logger.Debug("dependency check", logger.String("name", d.Name), logger.Bool("present", st.Present))
		out = append(out, st)
	}
	return out
}

// Missing returns the names of absent dependencies.
func Missing(statuses []Status) []string {
	var names []string
	for _, s := range statuses {
		if !s.Present {
			names = append(names, s.Name)
		}
	}
	return names
}
