package main

import (
	"github.com/diaglens/diaglens"
	"github.com/diaglens/diaglens/pkg/types"
)

// openDataset loads records from either a dataset file (YAML/JSON dump) or
// an imported SQLite datastore, picking by extension.
func openDataset(path string) (*types.Dataset, error) {
	v, err := diaglens.Open(path)
	if err != nil {
		return nil, err
	}
	return v.Dataset(), nil
}
