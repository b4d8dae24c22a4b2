package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RespectNoodles/HelpBox/pkg/config"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureRegistry = `{
  "registry": [
    {
      "name": "fd",
      "category": "search",
      "description": "simple fast find",
      "install": "echo install {prefix}",
      "update": "echo update fd",
      "verify": "fd --version",
      "source": "cargo"
    },
    {
      "name": "ripgrep",
      "category": "search",
      "description": "recursive grep",
      "install": "echo install rg",
      "update": "echo update rg",
      "verify": "rg --version",
      "source": "cargo"
    },
    {
      "name": "htop",
      "category": "system",
      "description": "process viewer",
      "install": "apt-get install -y htop",
      "update": "apt-get install --only-upgrade -y htop",
      "verify": "htop --version",
      "requires_root": true,
      "source": "apt"
    }
  ]
}
`

type countingSpawner struct {
	commands []string
	code     int
}

func (s *countingSpawner) Spawn(_ context.Context, command string, _ []string) (int, error) {
	s.commands = append(s.commands, command)
	return s.code, nil
}

type cliResult struct {
	code   int
	stdout string
	stderr string
}

type harness struct {
	t       *testing.T
	root    string
	spawner *countingSpawner
	found   map[string]bool
	stdin   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tools"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tools", "registry.json"), []byte(fixtureRegistry), 0o644))
	t.Setenv(config.EnvRoot, root)

	h := &harness{t: t, root: root, spawner: &countingSpawner{}, found: map[string]bool{}}

	origSpawner, origLookPath, origIsRoot, origHome := newSpawner, lookPath, isRoot, userHomeDir
	t.Cleanup(func() {
		newSpawner, lookPath, isRoot, userHomeDir = origSpawner, origLookPath, origIsRoot, origHome
	})
	newSpawner = func() tools.Spawner { return h.spawner }
	lookPath = func(name string) (string, error) {
		if h.found[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	isRoot = func() bool { return false }
	home := t.TempDir()
	userHomeDir = func() (string, error) { return home, nil }
	return h
}

func (h *harness) run(args ...string) cliResult {
	h.t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(h.stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	code := run(context.Background(), rootCmd, append([]string{"--no-color"}, args...))
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestInstallUnknownTool(t *testing.T) {
	h := newHarness(t)
	res := h.run("install", "nope")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Unknown tool: nope")
	assert.Empty(t, h.spawner.commands)
}

func TestUnknownToolSuggests(t *testing.T) {
	h := newHarness(t)
	res := h.run("info", "ripgrp")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "did you mean: ripgrep")
}

func TestInstallRunsRenderedCommand(t *testing.T) {
	h := newHarness(t)
	res := h.run("install", "fd")
	require.Equal(t, 0, res.code, res.stderr)
	require.Len(t, h.spawner.commands, 1)
	assert.Equal(t, "echo install "+filepath.Join(h.root, ".tools"), h.spawner.commands[0])
	assert.DirExists(t, filepath.Join(h.root, ".tools", "bin"))
	assert.DirExists(t, filepath.Join(h.root, ".tools", "tmp"))
	assert.NotContains(t, res.stdout, "$ echo")
}

func TestInstallDryRunNeverSpawns(t *testing.T) {
	h := newHarness(t)
	res := h.run("--dry-run", "install", "fd")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, h.spawner.commands)
	assert.Contains(t, res.stdout, "$ echo install "+filepath.Join(h.root, ".tools"))
}

func TestInstallExplain(t *testing.T) {
	h := newHarness(t)
	res := h.run("--explain", "install", "fd")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "[explain] Installing fd using cargo.")
}

func TestInstallPrefixFlagWins(t *testing.T) {
	h := newHarness(t)
	prefix := filepath.Join(t.TempDir(), "alt")
	res := h.run("--prefix", prefix, "install", "fd")
	require.Equal(t, 0, res.code)
	assert.Equal(t, []string{"echo install " + prefix}, h.spawner.commands)
}

func TestInstallForwardsExitCode(t *testing.T) {
	h := newHarness(t)
	h.spawner.code = 3
	res := h.run("install", "fd")
	assert.Equal(t, 3, res.code)
	assert.NotContains(t, res.stderr, "exit status")
}

func TestInstallRootWarning(t *testing.T) {
	h := newHarness(t)
	res := h.run("install", "htop")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "htop may require root privileges for install.")
}

func TestVerifyWarnsWhenMissing(t *testing.T) {
	h := newHarness(t)
	res := h.run("verify", "fd")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "fd is not installed (missing from PATH).")
	assert.Equal(t, []string{"fd --version"}, h.spawner.commands)
}

func TestUpdateAllContinuesOnFailure(t *testing.T) {
	h := newHarness(t)
	h.spawner.code = 2
	res := h.run("update", "--all")
	assert.Equal(t, 1, res.code)
	assert.Len(t, h.spawner.commands, 3)
	assert.Contains(t, res.stdout, "==> ripgrep")
	assert.Contains(t, res.stdout, "Updated 0 of 3 tools")
	assert.Contains(t, res.stdout, "failed: htop (exit 2)")
}

func TestUpdateAllSucceeds(t *testing.T) {
	h := newHarness(t)
	res := h.run("update", "--all")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Updated 3 of 3 tools")
}

func TestUpdateRequiresNameOrAll(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 1, h.run("update").code)
	assert.Equal(t, 1, h.run("update", "fd", "--all").code)
	assert.Empty(t, h.spawner.commands)
}

func TestNetFlushDNSDeclined(t *testing.T) {
	h := newHarness(t)
	h.found["resolvectl"] = true
	h.stdin = "n\n"
	res := h.run("net", "flush-dns")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Flush the DNS cache? [y/N]")
	assert.Empty(t, h.spawner.commands)
}

func TestNetFlushDNSConfirmed(t *testing.T) {
	h := newHarness(t)
	h.found["dscacheutil"] = true
	h.stdin = "yes\n"
	res := h.run("net", "flush-dns")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, []string{"dscacheutil -flushcache"}, h.spawner.commands)
	assert.Contains(t, res.stdout, "$ dscacheutil -flushcache")
}

func TestNetFlushDNSInterruptedAtPrompt(t *testing.T) {
	h := newHarness(t)
	h.found["resolvectl"] = true

	stdin, w := io.Pipe()
	defer w.Close() //nolint:errcheck

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	go func() { done <- run(ctx, rootCmd, []string{"--no-color", "net", "flush-dns"}) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case code := <-done:
		assert.Equal(t, 0, code)
	case <-time.After(2 * time.Second):
		t.Fatal("flush-dns still waiting at the prompt after interrupt")
	}
	assert.Contains(t, out.String(), "Flush the DNS cache? [y/N]")
	assert.Empty(t, h.spawner.commands)
	assert.Empty(t, errOut.String())
}

func TestNetMissingDependency(t *testing.T) {
	h := newHarness(t)
	res := h.run("net", "dns-test", "example.com")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "dns-test requires one of: dig, nslookup, host")
	assert.Empty(t, h.spawner.commands)
}

func TestNetPicksFirstInstalled(t *testing.T) {
	h := newHarness(t)
	h.found["nslookup"] = true
	h.found["host"] = true
	res := h.run("net", "dns-test", "example.com")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, []string{"nslookup example.com"}, h.spawner.commands)
}

func TestNetMTUDefaultHost(t *testing.T) {
	h := newHarness(t)
	h.found["ping"] = true
	res := h.run("net", "mtu-test")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, []string{"ping -M do -s 1472 -c 3 1.1.1.1"}, h.spawner.commands)
}

func TestNetPingRequiresHost(t *testing.T) {
	h := newHarness(t)
	h.found["ping"] = true
	res := h.run("net", "ping")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, h.spawner.commands)
}
