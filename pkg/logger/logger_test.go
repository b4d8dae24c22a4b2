/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", TraceLevel},
		{"DEBUG", DebugLevel},
		{" info ", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", WarnLevel},
		{"", WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitializeRejectsEmptyComponent(t *testing.T) {
	err := Initialize(Config{Level: InfoLevel})
	require.Error(t, err)
}

func TestInitializeSetsDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(Config{Level: InfoLevel, Component: "test", Output: &buf}))
	require.NotNil(t, defaultLogger)

	Info("hello", String("tool", "ripgrep"))
	Debug("filtered out")

	out := buf.String()
	assert.Contains(t, out, "[INFO] test: hello {tool=ripgrep}")
	assert.NotContains(t, out, "filtered out")
}

func TestPrettyFormattingDryRunMarker(t *testing.T) {
	l := New(Config{Level: InfoLevel, Component: "toolbox", DryRun: true})
	entry := LogEntry{
		Time:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     "WARN",
		Message:   "fzf missing",
		Component: "toolbox",
		Fields:    map[string]interface{}{"b": 2, "a": "x"},
	}

	got := l.formatPretty(entry)
	assert.Equal(t, "2025-01-01 12:00:00 [WARN] toolbox: [DRY-RUN] fzf missing {a=x, b=2}", got)
}

func TestPrettyFormattingColor(t *testing.T) {
	l := New(Config{Level: InfoLevel, UseColor: true})
	got := l.formatPretty(LogEntry{Time: time.Now(), Level: "ERROR", Message: "boom"})
	assert.Contains(t, got, "\033[31mERROR\033[0m")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: TraceLevel, JSON: true, Component: "toolbox", Output: &buf})
	l.Log(WarnLevel, "missing dependency", Strings("tried", []string{"dig", "host"}))

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "missing dependency", entry.Message)
	assert.Equal(t, "dig,host", entry.Fields["tried"])
}

func TestErrFieldNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}
