// Package dataset loads diagnostic dumps from YAML (or JSON, which YAML
// subsumes) files. Producing the dump is the analyzer's job; this package
// only gets it into memory.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/diaglens/diaglens/pkg/types"
)

// Load parses a dataset from YAML bytes.
func Load(data []byte) (*types.Dataset, error) {
	var ds types.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(ds.Modules) == 0 {
		return nil, fmt.Errorf("no modules found in dataset")
	}
	seen := make(map[string]bool, len(ds.Modules))
	for _, m := range ds.Modules {
		if m.Name == "" {
			return nil, fmt.Errorf("dataset contains a module without a name")
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("duplicate module %q in dataset", m.Name)
		}
		seen[m.Name] = true
	}
	return &ds, nil
}

// LoadFile loads a dataset from a file path.
func LoadFile(path string) (*types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Load(data)
}
