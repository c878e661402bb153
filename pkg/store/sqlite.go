package store

import (
	"database/sql"
	"fmt"

	"github.com/diaglens/diaglens/pkg/types"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Initialize schema
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddModule stores one module with its records in a single transaction.
// Re-importing the same module name is idempotent: the first import wins.
func (s *SQLiteStore) AddModule(m types.Module) error {
	exists, err := s.ModuleExists(m.Name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO modules (name, position)
		VALUES (?, (SELECT COUNT(*) FROM modules))
	`, m.Name)
	if err != nil {
		return fmt.Errorf("inserting module: %w", err)
	}

	for _, e := range m.Errors {
		_, err = tx.Exec(`
			INSERT INTO errors (module, span, message)
			VALUES (?, ?, ?)
		`, m.Name, e.Range, e.Message)
		if err != nil {
			return fmt.Errorf("inserting error record: %w", err)
		}
	}

	for _, b := range m.Bindings {
		_, err = tx.Exec(`
			INSERT INTO bindings (module, span, key, binding, result)
			VALUES (?, ?, ?, ?, ?)
		`, m.Name, b.Range, b.Key, b.Binding, b.Result)
		if err != nil {
			return fmt.Errorf("inserting binding record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing module: %w", err)
	}
	return nil
}

// ImportDataset stores every module of a dataset.
func (s *SQLiteStore) ImportDataset(ds *types.Dataset) error {
	for _, m := range ds.Modules {
		if err := s.AddModule(m); err != nil {
			return err
		}
	}
	return nil
}

// GetModule retrieves a module by name, records in import order.
func (s *SQLiteStore) GetModule(name string) (*types.Module, error) {
	exists, err := s.ModuleExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("module %q not found", name)
	}

	m := types.Module{Name: name}

	rows, err := s.db.Query(`
		SELECT span, message FROM errors WHERE module = ? ORDER BY id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("querying errors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e types.ErrorRecord
		if err := rows.Scan(&e.Range, &e.Message); err != nil {
			return nil, fmt.Errorf("scanning error record: %w", err)
		}
		m.Errors = append(m.Errors, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating errors: %w", err)
	}

	brows, err := s.db.Query(`
		SELECT span, key, binding, result FROM bindings WHERE module = ? ORDER BY id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("querying bindings: %w", err)
	}
	defer brows.Close()

	for brows.Next() {
		var b types.BindingRecord
		if err := brows.Scan(&b.Range, &b.Key, &b.Binding, &b.Result); err != nil {
			return nil, fmt.Errorf("scanning binding record: %w", err)
		}
		m.Bindings = append(m.Bindings, b)
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bindings: %w", err)
	}

	return &m, nil
}

// GetDataset retrieves all modules in import order.
func (s *SQLiteStore) GetDataset() (*types.Dataset, error) {
	names, err := s.ModuleNames()
	if err != nil {
		return nil, err
	}

	ds := &types.Dataset{Modules: make([]types.Module, 0, len(names))}
	for _, name := range names {
		m, err := s.GetModule(name)
		if err != nil {
			return nil, err
		}
		ds.Modules = append(ds.Modules, *m)
	}
	return ds, nil
}

// ModuleNames lists stored module names in import order.
func (s *SQLiteStore) ModuleNames() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM modules ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying modules: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning module name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating modules: %w", err)
	}

	return names, nil
}

// ModuleExists checks whether a module has already been imported.
func (s *SQLiteStore) ModuleExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM modules WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking module existence: %w", err)
	}
	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
