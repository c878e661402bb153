// Package filter decides which diagnostic and binding records a parsed
// query selects, by source-range overlap and substring match.
package filter

import (
	"fmt"
	"strings"

	"github.com/diaglens/diaglens/pkg/query"
	"github.com/diaglens/diaglens/pkg/types"
)

// Overlaps reports whether two closed spans intersect under the
// lexicographic (line, column) order. Touching boundaries count: a span
// ending at 1:5 overlaps one starting at 1:5.
func Overlaps(a, b types.SourceSpan) bool {
	return !endsBefore(a, b) && !endsBefore(b, a)
}

// endsBefore reports whether a ends strictly before b starts.
func endsBefore(a, b types.SourceSpan) bool {
	if a.End.Line != b.Start.Line {
		return a.End.Line < b.Start.Line
	}
	return a.End.Column < b.Start.Column
}

// Matches reports whether one candidate passes the query: its range must
// overlap the query's and its text must contain the query text. An empty
// query text matches any candidate.
func Matches(q query.Query, span types.SourceSpan, text string) bool {
	return Overlaps(q.Span, span) && strings.Contains(text, q.Text)
}

// ModuleResult is one module's surviving records, in dataset order.
type ModuleResult struct {
	Name     string                `json:"name"`
	Errors   []types.ErrorRecord   `json:"errors"`
	Bindings []types.BindingRecord `json:"bindings"`
}

// Apply runs one full filter pass: a linear scan of every record in the
// dataset against q. Modules with no surviving records are dropped. A range
// descriptor the grammar cannot parse is a defect in the dataset and aborts
// the pass.
func Apply(ds types.Dataset, q query.Query) ([]ModuleResult, error) {
	var results []ModuleResult
	for _, mod := range ds.Modules {
		res, err := ApplyModule(mod, q)
		if err != nil {
			return nil, err
		}
		if len(res.Errors) == 0 && len(res.Bindings) == 0 {
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// ApplyModule filters a single module's records against q.
func ApplyModule(mod types.Module, q query.Query) (ModuleResult, error) {
	res := ModuleResult{Name: mod.Name}
	for _, e := range mod.Errors {
		span, err := query.ParseSpan(e.Range)
		if err != nil {
			return ModuleResult{}, fmt.Errorf("module %s: error record: %w", mod.Name, err)
		}
		if Matches(q, span, e.Message) {
			res.Errors = append(res.Errors, e)
		}
	}
	for _, b := range mod.Bindings {
		span, err := query.ParseSpan(b.Range)
		if err != nil {
			return ModuleResult{}, fmt.Errorf("module %s: binding record: %w", mod.Name, err)
		}
		if Matches(q, span, b.SearchText()) {
			res.Bindings = append(res.Bindings, b)
		}
	}
	return res, nil
}
