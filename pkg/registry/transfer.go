/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/RespectNoodles/HelpBox/internal/schema"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/safeio"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a registry serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

const maxRemoteSize = 10 << 20

// FormatFromPath picks a format from a file name or URL extension.
// No extension means JSON.
func FormatFromPath(p string) (Format, error) {
	ext := filepath.Ext(p)
	if isRemote(p) {
		if u, err := url.Parse(p); err == nil {
			ext = path.Ext(u.Path)
		}
	}
	switch strings.ToLower(ext) {
	case "", ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported registry format %q (use .json, .yaml, .yml or .toml)", ext)
	}
}

// Export writes payload to w in the given format. Map keys are written in
// sorted order.
func Export(w io.Writer, payload interface{}, format Format) error {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode registry as JSON: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode registry as YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode registry as TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported registry format %q", format)
	}
}

// ExportFile writes payload to dest, choosing the format from its extension.
func ExportFile(dest string, payload interface{}) error {
	format, err := FormatFromPath(dest)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Export(&buf, payload, format); err != nil {
		return err
	}
	if err := safeio.WriteFileAtomic(dest, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	logger.Debug("registry exported", logger.String("path", dest), logger.String("format", string(format)))
	return nil
}

// Importer reads registry documents from local files or https URLs.
type Importer struct {
	Client Getter
}

// NewImporter returns an importer using NewHTTPClient.
func NewImporter() *Importer {
	return &Importer{Client: NewHTTPClient()}
}

// Import reads source, requires a top-level registry key, validates it against
// the registry schema and saves it to dest as JSON. Keys other than registry
// are preserved.
func (im *Importer) Import(source, dest string) (*Registry, error) {
	if isInsecureRemote(source) {
		return nil, &ImportError{Path: source, Reason: "plain http is not supported, use https"}
	}
	format, err := FormatFromPath(source)
	if err != nil {
		return nil, &ImportError{Path: source, Reason: "unsupported format", Err: err}
	}
	data, err := im.read(source)
	if err != nil {
		return nil, &ImportError{Path: source, Reason: "cannot read input", Err: err}
	}
	payload, err := decodePayload(data, format)
	if err != nil {
		return nil, &ImportError{Path: source, Reason: fmt.Sprintf("malformed %s", format), Err: err}
	}
	obj, ok := payload.(map[string]interface{})
	if !ok {
		return nil, &ImportError{Path: source, Reason: "Import file missing registry key."}
	}
	if _, has := obj["registry"]; !has {
		return nil, &ImportError{Path: source, Reason: "Import file missing registry key."}
	}
	if err := validateDocument(obj, schema.Registry); err != nil {
		return nil, &ImportError{Path: source, Reason: "schema validation failed", Err: err}
	}

	normalized, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return nil, &ImportError{Path: source, Reason: "cannot encode as JSON", Err: err}
	}
	var doc Document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, &ImportError{Path: source, Reason: "cannot decode records", Err: err}
	}
	var stored map[string]interface{}
	if err := json.Unmarshal(normalized, &stored); err != nil {
		return nil, &ImportError{Path: source, Reason: "cannot decode records", Err: err}
	}
	if err := safeio.WriteFileAtomic(dest, append(normalized, '\n')); err != nil {
		return nil, fmt.Errorf("failed to save registry %s: %w", dest, err)
	}

	r := New(doc.Registry)
	r.path = dest
	r.payload = stored
	logger.Info("registry imported", logger.String("source", source), logger.String("dest", dest), logger.Int("tools", r.Len()))
	return r, nil
}

func (im *Importer) read(source string) ([]byte, error) {
	if !isRemote(source) {
		// #nosec G304 -- operator-supplied import path
		return os.ReadFile(source)
	}
	client := im.Client
	if client == nil {
		client = NewHTTPClient()
	}
	resp, err := client.Get(source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
}

func decodePayload(data []byte, format Format) (interface{}, error) {
	var payload interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	case FormatTOML:
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		payload = m
	default:
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	}
	return payload, nil
}
