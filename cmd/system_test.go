package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RespectNoodles/HelpBox/internal/ops"
	"github.com/RespectNoodles/HelpBox/pkg/buildinfo"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	latest "github.com/tcnksm/go-latest"
)

func TestDoctor(t *testing.T) {
	h := newHarness(t)
	h.found["git"] = true
	res := h.run("doctor")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Regexp(t, `git\s+ok`, res.stdout)
	assert.Regexp(t, `fzf\s+missing`, res.stdout)
	assert.Contains(t, res.stdout, "Registry: "+filepath.Join(h.root, "tools", "registry.json"))
	assert.Contains(t, res.stdout, "Prefix: "+filepath.Join(h.root, ".tools"))
	assert.Contains(t, res.stdout, "PATH diagnostics")
}

func TestDoctorPathReport(t *testing.T) {
	h := newHarness(t)
	x := t.TempDir()
	missing := filepath.Join(x, "gone")
	t.Setenv("PATH", x+string(os.PathListSeparator)+missing+string(os.PathListSeparator)+x)

	res := h.run("doctor")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Duplicate PATH entries:\n  - "+x)
	assert.Contains(t, res.stdout, "PATH segments that do not exist:\n  - "+missing)
}

func TestSetupIdempotent(t *testing.T) {
	h := newHarness(t)
	t.Setenv("SHELL", "/bin/bash")

	res := h.run("setup")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Updated shell configuration at")

	res = h.run("setup")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Shell setup already present in")

	res = h.run("setup", "--theme", "vivid")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Backed up")

	home, _ := userHomeDir()
	data, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, `source "`+filepath.Join(h.root, "shell", "init.sh")+`" --theme vivid`+"\n", string(data))
}

func TestSetupRejectsUnknownTheme(t *testing.T) {
	h := newHarness(t)
	res := h.run("setup", "--theme", "neon")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown theme")
}

func TestSetupDryRunWritesNothing(t *testing.T) {
	h := newHarness(t)
	t.Setenv("SHELL", "/usr/bin/zsh")
	res := h.run("--dry-run", "setup")
	require.Equal(t, 0, res.code)
	home, _ := userHomeDir()
	assert.NoFileExists(t, filepath.Join(home, ".zshrc"))
	assert.Contains(t, res.stdout, ".zshrc")
}

func TestSelfUpdateSkipsOutsideGit(t *testing.T) {
	h := newHarness(t)
	res := h.run("self-update")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Self-update skipped (not a git repository).")
	assert.Empty(t, h.spawner.commands)
}

func TestVersionCheck(t *testing.T) {
	h := newHarness(t)
	origVersion, origCheck := buildinfo.BinaryVersion, checkLatest
	t.Cleanup(func() { buildinfo.BinaryVersion, checkLatest = origVersion, origCheck })

	buildinfo.BinaryVersion = "1.0.0"
	checkLatest = func(_ latest.Source, current string) (*latest.CheckResponse, error) {
		assert.Equal(t, "1.0.0", current)
		return &latest.CheckResponse{Current: "1.1.0", Outdated: true}, nil
	}
	res := h.run("version", "--check")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "toolbox 1.0.0")
	assert.Contains(t, res.stdout, "A new version is available: 1.1.0 (you have 1.0.0)")

	checkLatest = func(latest.Source, string) (*latest.CheckResponse, error) {
		return nil, errors.New("rate limited")
	}
	res = h.run("version", "--check")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "update check failed")
}

func TestRootHelpIsGrouped(t *testing.T) {
	h := newHarness(t)
	res := h.run("--help")
	require.Equal(t, 0, res.code)
	for _, want := range []string{"Catalog Commands:", "Tool Lifecycle Commands:", "System Commands:", "Support Commands:", "self-update"} {
		assert.Contains(t, res.stdout, want)
	}
}

func TestCoreTaxonomyIsConsistent(t *testing.T) {
	errs := ops.NewTaxonomyValidator().Validate(ops.GetRegistry())
	assert.Empty(t, ops.FilterErrorsBySeverity(errs, ops.SeverityError), ops.FormatErrors(errs))
}

func TestExitCodeInterruptIsSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, 0, exitCode(ctx, &ExitError{Code: 130}, rootCmd))
}

func TestExitCodeForwardsToolStatus(t *testing.T) {
	assert.Equal(t, 42, exitCode(context.Background(), &ExitError{Code: 42}, rootCmd))
	assert.Equal(t, 0, exitCode(context.Background(), nil, rootCmd))
}

func TestConfigErrorHonorsNoColor(t *testing.T) {
	h := newHarness(t)
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	res := h.run("--config", filepath.Join(t.TempDir(), "missing.json"), "list")
	assert.Equal(t, 1, res.code)
	assert.NotEmpty(t, res.stderr)
	assert.NotContains(t, res.stderr, "\x1b[")
}
