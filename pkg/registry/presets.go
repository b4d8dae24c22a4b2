package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/RespectNoodles/HelpBox/internal/schema"
)

// Preset is a named group of example invocations.
type Preset struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

type presetFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets reads tools/presets.json. A missing file means no presets.
func LoadPresets(path string) ([]Preset, error) {
	// #nosec G304 -- path is the deployment presets location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read presets %s: %w", path, err)
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}
	if err := validateDocument(raw, schema.Presets); err != nil {
		return nil, fmt.Errorf("invalid presets %s: %w", path, err)
	}
	var pf presetFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to decode presets %s: %w", path, err)
	}
	return pf.Presets, nil
}
