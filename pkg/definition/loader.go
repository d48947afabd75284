package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the definition at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the definition at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Definition, error) {
	if fsys == nil {
		return Definition{}, fmt.Errorf("definition: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML definition. Sources ending in .yaml or .yml
// are decoded as YAML directly; anything else tries JSON first and falls back
// to YAML. The result is not validated.
func Parse(data []byte, source string) (Definition, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Definition{}, fmt.Errorf("definition: %s is empty", source)
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("definition: parse %s: %w", source, err)
		}
		return def, nil
	}

	if err := json.Unmarshal(data, &def); err == nil {
		return def, nil
	}
	def = Definition{}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML", source)
	}
	return def, nil
}

// MarshalYAML encodes the definition as a YAML document.
func MarshalYAML(def Definition) ([]byte, error) {
	out, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("definition: encode yaml: %w", err)
	}
	return out, nil
}
