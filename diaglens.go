// Package diaglens provides a library interface for querying static-analyzer
// diagnostic dumps by source range and text.
//
// # Basic Usage
//
// Open a dataset and run a query:
//
//	viewer, err := diaglens.Open("trace.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := viewer.Query("1:2-3:4 unbound")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, res := range results {
//	    for _, e := range res.Errors {
//	        fmt.Printf("%s %s %s\n", res.Name, e.Range, e.Message)
//	    }
//	}
//
// Queries combine an optional line:column range with free text: "8" selects
// line 8, "1:2-3" selects columns 2 through 3 on line 1, bare words match
// record text anywhere in the file.
package diaglens

import (
	"fmt"
	"strings"

	"github.com/diaglens/diaglens/pkg/dataset"
	"github.com/diaglens/diaglens/pkg/filter"
	"github.com/diaglens/diaglens/pkg/query"
	"github.com/diaglens/diaglens/pkg/store"
	"github.com/diaglens/diaglens/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/diaglens/diaglens" without subpackages.
type (
	// Dataset is a full diagnostic dump keyed by module.
	Dataset = types.Dataset

	// Module groups one module's error and binding records.
	Module = types.Module

	// ErrorRecord is one diagnostic: a range descriptor plus message text.
	ErrorRecord = types.ErrorRecord

	// BindingRecord is one variable-binding trace entry.
	BindingRecord = types.BindingRecord

	// SourceSpan is a closed line:column range.
	SourceSpan = types.SourceSpan

	// ModuleResult is one module's records surviving a filter pass.
	ModuleResult = filter.ModuleResult
)

// ParseQuery parses a free-text range query.
func ParseQuery(input string) (query.Query, error) {
	return query.Parse(input)
}

// Overlaps reports whether two closed source spans intersect.
func Overlaps(a, b SourceSpan) bool {
	return filter.Overlaps(a, b)
}

// Viewer answers range queries over a loaded dataset.
type Viewer struct {
	dataset *types.Dataset
}

// Open loads a dataset from a YAML/JSON dump file, or from a SQLite
// datastore when the path ends in ".db".
func Open(path string) (*Viewer, error) {
	if strings.HasSuffix(path, ".db") {
		s, err := store.New(store.Config{Path: path})
		if err != nil {
			return nil, fmt.Errorf("opening datastore: %w", err)
		}
		defer s.Close()

		ds, err := s.GetDataset()
		if err != nil {
			return nil, fmt.Errorf("reading datastore: %w", err)
		}
		return &Viewer{dataset: ds}, nil
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Viewer{dataset: ds}, nil
}

// NewViewer wraps an already loaded dataset.
func NewViewer(ds *Dataset) *Viewer {
	return &Viewer{dataset: ds}
}

// Dataset returns the loaded dataset.
func (v *Viewer) Dataset() *Dataset {
	return v.dataset
}

// Modules lists module names in dataset order.
func (v *Viewer) Modules() []string {
	return v.dataset.ModuleNames()
}

// Query runs one filter pass over every module.
func (v *Viewer) Query(input string) ([]ModuleResult, error) {
	q, err := query.Parse(input)
	if err != nil {
		return nil, err
	}
	return filter.Apply(*v.dataset, q)
}

// QueryModule runs one filter pass over a single module.
func (v *Viewer) QueryModule(module, input string) (ModuleResult, error) {
	mod := v.dataset.Module(module)
	if mod == nil {
		return ModuleResult{}, fmt.Errorf("unknown module: %s", module)
	}
	q, err := query.Parse(input)
	if err != nil {
		return ModuleResult{}, err
	}
	return filter.ApplyModule(*mod, q)
}
