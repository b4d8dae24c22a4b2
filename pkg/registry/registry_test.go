package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `{
  "registry": [
    {
      "name": "ripgrep",
      "category": "search",
      "description": "Fast recursive grep",
      "install": "cargo install --root {prefix} ripgrep",
      "update": "cargo install --root {prefix} --force ripgrep",
      "verify": "rg --version",
      "docs": "https://github.com/BurntSushi/ripgrep",
      "source": "cargo"
    },
    {
      "name": "nmap",
      "category": "Network",
      "description": "Port scanner",
      "install": "apt-get install -y nmap",
      "update": "apt-get install -y --only-upgrade nmap",
      "verify": "nmap --version",
      "requires_root": true,
      "source": "apt"
    },
    {
      "name": "httpie",
      "description": "Human friendly HTTP client",
      "install": "pip install --prefix {prefix} httpie",
      "update": "pip install --prefix {prefix} -U httpie",
      "verify": "http --version",
      "source": "pip"
    }
  ]
}`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools", "registry.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadSample(t *testing.T) *Registry {
	t.Helper()
	r, err := Load(writeRegistry(t, sampleRegistry))
	require.NoError(t, err)
	return r
}

func TestLoad(t *testing.T) {
	r := loadSample(t)
	require.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"ripgrep", "nmap", "httpie"}, r.Names())

	httpie, err := r.Find("httpie")
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, httpie.Category)
	assert.False(t, httpie.RequiresRoot)

	nmap, err := r.Find("nmap")
	require.NoError(t, err)
	assert.True(t, nmap.RequiresRoot)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestLoad_NoRegistryKeyIsEmpty(t *testing.T) {
	r, err := Load(writeRegistry(t, `{"version": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeRegistry(t, `{"registry": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse registry")
}

func TestLoad_SchemaViolation(t *testing.T) {
	_, err := Load(writeRegistry(t, `{"registry": [{"category": "x"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid registry")
}

func TestFind_Unknown(t *testing.T) {
	r := loadSample(t)
	_, err := r.Find("ripgre")
	require.Error(t, err)

	var unknown *UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ripgre", unknown.Name)
	assert.Contains(t, unknown.Suggestions, "ripgrep")
	assert.Contains(t, err.Error(), "Unknown tool: ripgre")
}

func TestFind_UnknownNoSuggestions(t *testing.T) {
	r := loadSample(t)
	_, err := r.Find("zzzzzzzzzz")
	require.Error(t, err)
	assert.Equal(t, "Unknown tool: zzzzzzzzzz", err.Error())
}

func TestFind_FirstMatchWins(t *testing.T) {
	r := New([]ToolRecord{
		{Name: "fd", Description: "first"},
		{Name: "fd", Description: "second"},
	})
	rec, err := r.Find("fd")
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Description)
}

func TestFind_ExactCaseSensitive(t *testing.T) {
	r := loadSample(t)
	_, err := r.Find("RIPGREP")
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	r := loadSample(t)
	tests := []struct {
		query string
		want  []string
	}{
		{"grep", []string{"ripgrep"}},
		{"NETWORK", []string{"nmap"}},
		{"http", []string{"httpie"}},
		{"uncategorized", []string{"httpie"}},
		{"", []string{"ripgrep", "nmap", "httpie"}},
		{"n*", []string{"nmap"}},
		{"{rip,htt}*", []string{"ripgrep", "httpie"}},
		{"nothing-here", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, rec := range r.Search(tt.query) {
				got = append(got, rec.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategories(t *testing.T) {
	r := loadSample(t)
	assert.Equal(t, []string{"search", "Network", DefaultCategory}, r.Categories())
	assert.Len(t, r.ByCategory("search"), 1)
}

func TestToolsReturnsCopy(t *testing.T) {
	r := loadSample(t)
	tools := r.Tools()
	tools[0].Name = "mutated"
	assert.Equal(t, "ripgrep", r.Names()[0])
}
