/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/RespectNoodles/HelpBox/internal/schema"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
)

// DefaultCategory is assigned to records that omit a category.
const DefaultCategory = "uncategorized"

// ToolRecord describes one external tool and the shell commands that manage it.
type ToolRecord struct {
	Name         string `json:"name" yaml:"name" toml:"name"`
	Category     string `json:"category" yaml:"category" toml:"category"`
	Description  string `json:"description" yaml:"description" toml:"description"`
	Install      string `json:"install" yaml:"install" toml:"install"`
	Update       string `json:"update" yaml:"update" toml:"update"`
	Verify       string `json:"verify" yaml:"verify" toml:"verify"`
	RequiresRoot bool   `json:"requires_root" yaml:"requires_root" toml:"requires_root"`
	Docs         string `json:"docs" yaml:"docs" toml:"docs"`
	Source       string `json:"source" yaml:"source" toml:"source"`
}

// Document is the on-disk shape of tools/registry.json.
type Document struct {
	Registry []ToolRecord `json:"registry" yaml:"registry" toml:"registry"`
}

// Registry is the ordered, read-only tool catalog.
type Registry struct {
	path  string
	tools []ToolRecord
	// payload is the decoded file as stored, extra keys included.
	payload map[string]interface{}
}

// New builds a registry from records, applying field defaults.
func New(records []ToolRecord) *Registry {
	tools := make([]ToolRecord, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Category) == "" {
			rec.Category = DefaultCategory
		}
		tools[i] = rec
	}
	return &Registry{tools: tools}
}

// Load reads a registry file. A missing file, or one without a registry key,
// yields an empty registry; malformed content is an error.
func Load(path string) (*Registry, error) {
	// #nosec G304 -- path is the deployment registry location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("registry file not found, using empty registry", logger.String("path", path))
			r := New(nil)
			r.path = path
			r.payload = map[string]interface{}{}
			return r, nil
		}
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	obj, _ := raw.(map[string]interface{})
	if obj != nil {
		if _, has := obj["registry"]; !has {
			logger.Debug("registry file has no registry key", logger.String("path", path))
			r := New(nil)
			r.path = path
			r.payload = obj
			return r, nil
		}
	}
	if err := validateDocument(raw, schema.Registry); err != nil {
		return nil, fmt.Errorf("invalid registry %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode registry %s: %w", path, err)
	}
	r := New(doc.Registry)
	r.path = path
	r.payload = obj
	logger.Debug("registry loaded", logger.String("path", path), logger.Int("tools", r.Len()))
	return r, nil
}

// Path returns the file the registry was loaded from, if any.
func (r *Registry) Path() string { return r.path }

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.tools) }

// Tools returns a copy of the records in registry order.
func (r *Registry) Tools() []ToolRecord {
	out := make([]ToolRecord, len(r.tools))
	copy(out, r.tools)
	return out
}

// Names returns tool names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name
	}
	return names
}

// Document returns the normalized records in their serializable form.
func (r *Registry) Document() Document {
	return Document{Registry: r.Tools()}
}

// Payload returns what export writes: the registry file exactly as decoded,
// without category defaults and with any extra top-level keys. A registry
// built with New has no stored form and falls back to Document.
func (r *Registry) Payload() interface{} {
	if r.payload != nil {
		return r.payload
	}
	return r.Document()
}

// Find returns the first record whose name matches exactly. It fails with
// *UnknownToolError, carrying close matches, when nothing matches.
func (r *Registry) Find(name string) (ToolRecord, error) {
	for _, t := range r.tools {
		if t.Name == name {
			return t, nil
		}
	}
	return ToolRecord{}, &UnknownToolError{Name: name, Suggestions: suggest(name, r.Names())}
}

func validateDocument(raw interface{}, schemaName string) error {
	res, err := schema.Validate(raw, schemaName)
	if err != nil {
		return err
	}
	if res.Valid {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}
