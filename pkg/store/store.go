// Package store persists imported diagnostic datasets so large traces can
// be imported once and queried repeatedly.
package store

import (
	"fmt"

	"github.com/diaglens/diaglens/pkg/types"
)

// Store provides persistence for diagnostic datasets.
// This interface abstracts the underlying storage implementation,
// allowing for different backends (SQLite, in-memory).
type Store interface {
	// AddModule stores one module with its error and binding records.
	// Record order is preserved across a round trip.
	AddModule(m types.Module) error

	// ImportDataset stores every module of a dataset.
	ImportDataset(ds *types.Dataset) error

	// GetModule retrieves a module by name.
	GetModule(name string) (*types.Module, error)

	// GetDataset retrieves all modules in import order.
	GetDataset() (*types.Dataset, error)

	// ModuleNames lists stored module names in import order.
	ModuleNames() ([]string, error)

	// ModuleExists checks whether a module has already been imported.
	ModuleExists(name string) (bool, error)

	// Close closes the database connection.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing).
	Path string
}

// New creates a new Store. ":memory:" paths select the in-memory backend,
// file paths select SQLite.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}
