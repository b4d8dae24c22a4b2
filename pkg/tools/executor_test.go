/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSpawner struct {
	calls    int
	commands []string
	envs     [][]string
	code     int
	err      error
}

func (s *countingSpawner) Spawn(_ context.Context, command string, env []string) (int, error) {
	s.calls++
	s.commands = append(s.commands, command)
	s.envs = append(s.envs, env)
	return s.code, s.err
}

type recordingReporter struct {
	explained []string
	commands  []string
}

func (r *recordingReporter) Explain(reason string)   { r.explained = append(r.explained, reason) }
func (r *recordingReporter) Command(rendered string) { r.commands = append(r.commands, rendered) }

func newTestRunner(ec ExecutionContext, sp *countingSpawner, rep *recordingReporter) *Runner {
	return &Runner{
		Context:  ec,
		Spawner:  sp,
		Reporter: rep,
		Environ:  func() []string { return []string{"PATH=/usr/bin", "HOME=/home/op"} },
	}
}

func TestRun_DryRunNeverSpawns(t *testing.T) {
	sp := &countingSpawner{code: 42}
	rep := &recordingReporter{}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t", DryRun: true}, sp, rep)

	code, err := r.Run(context.Background(), "cargo install --root {prefix} fd-find", "install fd")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 0, sp.calls)
	assert.Equal(t, []string{"cargo install --root /opt/t fd-find"}, rep.commands)
	assert.Empty(t, rep.explained, "explanation requires --explain")

	code, err = r.RunLogged(context.Background(), "resolvectl flush-caches", "flush DNS")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 0, sp.calls)
}

func TestRun_QuietByDefault(t *testing.T) {
	sp := &countingSpawner{}
	rep := &recordingReporter{}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t"}, sp, rep)

	code, err := r.Run(context.Background(), "true", "reason")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, sp.calls)
	assert.Empty(t, rep.commands)
	assert.Empty(t, rep.explained)
}

func TestRun_VerboseAndExplain(t *testing.T) {
	sp := &countingSpawner{}
	rep := &recordingReporter{}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t", Verbose: true, Explain: true}, sp, rep)

	_, err := r.Run(context.Background(), "pip install --prefix {prefix} httpie", "install httpie")
	require.NoError(t, err)
	assert.Equal(t, []string{"install httpie"}, rep.explained)
	assert.Equal(t, []string{"pip install --prefix /opt/t httpie"}, rep.commands)
	assert.Equal(t, []string{"pip install --prefix /opt/t httpie"}, sp.commands)
}

func TestRun_EmptyReasonNotExplained(t *testing.T) {
	sp := &countingSpawner{}
	rep := &recordingReporter{}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t", Explain: true}, sp, rep)

	_, err := r.Run(context.Background(), "true", "")
	require.NoError(t, err)
	assert.Empty(t, rep.explained)
}

func TestRunLogged_AlwaysShows(t *testing.T) {
	sp := &countingSpawner{}
	rep := &recordingReporter{}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t"}, sp, rep)

	_, err := r.RunLogged(context.Background(), "ping -c 4 1.1.1.1", "check reachability")
	require.NoError(t, err)
	assert.Equal(t, []string{"check reachability"}, rep.explained)
	assert.Equal(t, []string{"ping -c 4 1.1.1.1"}, rep.commands)
	assert.Equal(t, 1, sp.calls)
}

func TestRun_ForwardsExitCode(t *testing.T) {
	sp := &countingSpawner{code: 100}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t"}, sp, nil)

	code, err := r.Run(context.Background(), "apt-get install -y nothing", "")
	require.NoError(t, err)
	assert.Equal(t, 100, code)
}

func TestRun_LaunchErrorPropagates(t *testing.T) {
	launch := &LaunchError{Command: "x", Err: errors.New("exec format error")}
	sp := &countingSpawner{code: -1, err: launch}
	r := newTestRunner(ExecutionContext{Prefix: "/opt/t"}, sp, nil)

	_, err := r.Run(context.Background(), "x", "")
	var le *LaunchError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, err.Error(), "Failed to run command")
}

func TestRun_SpawnedEnvHasPrefixBinFirst(t *testing.T) {
	sp := &countingSpawner{}
	ec := ExecutionContext{Prefix: filepath.FromSlash("/opt/t")}
	r := newTestRunner(ec, sp, nil)

	_, err := r.Run(context.Background(), "true", "")
	require.NoError(t, err)
	require.Len(t, sp.envs, 1)
	path, ok := LookupEnv(sp.envs[0], "PATH")
	require.True(t, ok)
	assert.Equal(t, ec.BinDir(), filepath.SplitList(path)[0])
}

func TestLocalSpawner_ExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX sh")
	}
	s := &LocalSpawner{}
	env := []string{"PATH=/usr/bin:/bin"}

	code, err := s.Spawn(context.Background(), "exit 0", env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = s.Spawn(context.Background(), "exit 3", env)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestLocalSpawner_SeesPrefixedPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX sh")
	}
	s := &LocalSpawner{}
	ec := ExecutionContext{Prefix: "/opt/helpbox"}
	env := BuildEnv(ec, []string{"PATH=/usr/bin:/bin"})

	code, err := s.Spawn(context.Background(), `case "$PATH" in /opt/helpbox/bin:*) exit 0;; *) exit 9;; esac`, env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
