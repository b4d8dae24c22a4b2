/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package tools

import (
	"os"
	"runtime"
	"strings"
)

// HostEnviron is the only place toolbox reads the process environment.
// Everything else receives the environment as an explicit []string.
func HostEnviron() []string {
	return os.Environ()
}

func isPathKey(key string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(key, "PATH")
	}
	return key == "PATH"
}

// LookupEnv finds key in a KEY=VALUE list. The first occurrence wins, which
// matches how the C runtime resolves duplicated entries.
func LookupEnv(environ []string, key string) (string, bool) {
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if k == key || (isPathKey(key) && isPathKey(k)) {
			return v, true
		}
	}
	return "", false
}

// BuildEnv returns a fresh copy of environ with <prefix>/bin prepended to PATH.
// The input slice is not modified. When the inherited PATH is empty no trailing
// separator is added, since an empty PATH element means the working directory.
func BuildEnv(c ExecutionContext, environ []string) []string {
	out := make([]string, 0, len(environ)+1)
	pathKey := "PATH"
	original := ""
	found := false

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && isPathKey(k) {
			if !found {
				pathKey = k
				original = v
				found = true
			}
			continue
		}
		out = append(out, kv)
	}

	value := c.BinDir()
	if original != "" {
		value += string(os.PathListSeparator) + original
	}
	return append(out, pathKey+"="+value)
}
