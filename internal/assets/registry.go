package assets

// SchemaInfo describes an embedded schema available at runtime.
// Update this when adding/removing curated schemas.
type SchemaInfo struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Draft string `json:"draft"`
}

var Registry = []SchemaInfo{
	{Name: "toolbox-registry-v1", Path: "schemas/v1/registry.yaml", Draft: "draft-07"},
	{Name: "toolbox-presets-v1", Path: "schemas/v1/presets.yaml", Draft: "draft-07"},
	{Name: "toolbox-config-v1", Path: "schemas/v1/config.yaml", Draft: "draft-07"},
}

// GetSchemaNames returns the curated schema list.
func GetSchemaNames() []SchemaInfo {
	out := make([]SchemaInfo, len(Registry))
	copy(out, Registry)
	return out
}
