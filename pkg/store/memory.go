package store

import (
	"fmt"
	"sync"

	"github.com/diaglens/diaglens/pkg/types"
)

// MemoryStore implements Store using in-memory data structures.
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	modules map[string]types.Module
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		modules: make(map[string]types.Module),
	}
}

// AddModule stores one module. Re-importing the same module name is
// idempotent: the first import wins.
func (m *MemoryStore) AddModule(mod types.Module) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.modules[mod.Name]; exists {
		return nil
	}

	m.order = append(m.order, mod.Name)
	m.modules[mod.Name] = mod
	return nil
}

// ImportDataset stores every module of a dataset.
func (m *MemoryStore) ImportDataset(ds *types.Dataset) error {
	for _, mod := range ds.Modules {
		if err := m.AddModule(mod); err != nil {
			return err
		}
	}
	return nil
}

// GetModule retrieves a module by name.
func (m *MemoryStore) GetModule(name string) (*types.Module, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mod, ok := m.modules[name]
	if !ok {
		return nil, fmt.Errorf("module %q not found", name)
	}

	// Return a copy to avoid external modifications.
	out := mod
	out.Errors = append([]types.ErrorRecord(nil), mod.Errors...)
	out.Bindings = append([]types.BindingRecord(nil), mod.Bindings...)
	return &out, nil
}

// GetDataset retrieves all modules in import order.
func (m *MemoryStore) GetDataset() (*types.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ds := &types.Dataset{Modules: make([]types.Module, 0, len(m.order))}
	for _, name := range m.order {
		ds.Modules = append(ds.Modules, m.modules[name])
	}
	return ds, nil
}

// ModuleNames lists stored module names in import order.
func (m *MemoryStore) ModuleNames() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.order))
	copy(names, m.order)
	return names, nil
}

// ModuleExists checks whether a module has already been imported.
func (m *MemoryStore) ModuleExists(name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.modules[name]
	return exists, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
