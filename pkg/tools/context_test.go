/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecutionContext_RelativePrefixAnchoredAtRoot(t *testing.T) {
	root := t.TempDir()
	ec, err := NewExecutionContext(ContextOptions{Prefix: "./.tools", Root: root, Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".tools"), ec.Prefix)
	assert.True(t, filepath.IsAbs(ec.Prefix))
	assert.True(t, ec.Verbose)
	assert.False(t, ec.DryRun)
}

func TestNewExecutionContext_AbsolutePrefixKept(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "opt", "tools")
	ec, err := NewExecutionContext(ContextOptions{Prefix: abs, Root: "/somewhere/else"})
	require.NoError(t, err)
	assert.Equal(t, abs, ec.Prefix)
}

func TestNewExecutionContext_EmptyPrefix(t *testing.T) {
	_, err := NewExecutionContext(ContextOptions{})
	require.Error(t, err)
}

func TestEnsurePrefix(t *testing.T) {
	ec := ExecutionContext{Prefix: filepath.Join(t.TempDir(), "prefix")}
	require.NoError(t, EnsurePrefix(ec))

	for _, dir := range []string{ec.BinDir(), ec.TmpDir()} {
		st, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, st.IsDir(), "%s should be a directory", dir)
	}

	// second call is a no-op
	require.NoError(t, EnsurePrefix(ec))
}
