package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaglens/diaglens/pkg/query"
	"github.com/diaglens/diaglens/pkg/types"
)

func span(ls, cs, le, ce int) types.SourceSpan {
	return types.SourceSpan{
		Start: types.SourcePoint{Line: ls, Column: cs},
		End:   types.SourcePoint{Line: le, Column: ce},
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b types.SourceSpan
		want bool
	}{
		{
			name: "shared boundary column counts as overlap",
			a:    span(1, 1, 1, 5),
			b:    span(1, 5, 1, 10),
			want: true,
		},
		{
			name: "adjacent but disjoint columns",
			a:    span(1, 1, 1, 4),
			b:    span(1, 5, 1, 10),
			want: false,
		},
		{
			name: "disjoint lines",
			a:    span(1, 1, 2, 80),
			b:    span(3, 1, 4, 80),
			want: false,
		},
		{
			name: "nested span",
			a:    span(1, 1, 9, 80),
			b:    span(3, 4, 3, 9),
			want: true,
		},
		{
			name: "boundary line with earlier column",
			a:    span(1, 1, 3, 4),
			b:    span(3, 5, 5, 1),
			want: false,
		},
		{
			name: "boundary line with touching column",
			a:    span(1, 1, 3, 5),
			b:    span(3, 5, 5, 1),
			want: true,
		},
		{
			name: "unbounded end reaches everything below",
			a:    span(8, 1, 8, types.Unbounded),
			b:    span(8, 40, 8, 44),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlaps_Reflexive(t *testing.T) {
	spans := []types.SourceSpan{
		span(1, 1, 1, 1),
		span(1, 1, types.Unbounded, types.Unbounded),
		span(4, 7, 9, 2),
	}
	for _, s := range spans {
		assert.True(t, Overlaps(s, s), "span %v", s)
	}
}

func TestMatches(t *testing.T) {
	q, err := query.Parse("1:1-2:10 needle")
	require.NoError(t, err)

	// Range and text both match.
	assert.True(t, Matches(q, span(2, 1, 2, 5), "a needle here"))
	// Range matches, text does not.
	assert.False(t, Matches(q, span(2, 1, 2, 5), "nothing to see"))
	// Text matches, range does not.
	assert.False(t, Matches(q, span(9, 1, 9, 5), "a needle here"))

	// Empty query text matches any candidate in range.
	empty, err := query.Parse("1:1-2:10")
	require.NoError(t, err)
	assert.True(t, Matches(empty, span(2, 1, 2, 5), "anything at all"))
}

func testDataset() types.Dataset {
	return types.Dataset{Modules: []types.Module{
		{
			Name: "alpha",
			Errors: []types.ErrorRecord{
				{Range: "1:1-1:10", Message: "unbound name x"},
				{Range: "5:1-5:20", Message: "bad argument count"},
			},
			Bindings: []types.BindingRecord{
				{Range: "1:5-1:6", Key: "x", Binding: "def x", Result: "int"},
				{Range: "9:1-9:4", Key: "main", Binding: "def main", Result: "None"},
			},
		},
		{
			Name: "beta",
			Errors: []types.ErrorRecord{
				{Range: "2:1-2:8", Message: "unbound name y"},
			},
		},
	}}
}

func TestApply_FiltersByRange(t *testing.T) {
	q, err := query.Parse("1")
	require.NoError(t, err)

	results, err := Apply(testDataset(), q)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "alpha", results[0].Name)
	require.Len(t, results[0].Errors, 1)
	assert.Equal(t, "unbound name x", results[0].Errors[0].Message)
	require.Len(t, results[0].Bindings, 1)
	assert.Equal(t, "x", results[0].Bindings[0].Key)
}

func TestApply_FiltersByText(t *testing.T) {
	q, err := query.Parse("unbound")
	require.NoError(t, err)

	results, err := Apply(testDataset(), q)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "alpha", results[0].Name)
	assert.Equal(t, "beta", results[1].Name)
	require.Len(t, results[0].Errors, 1)
	assert.Empty(t, results[0].Bindings)
}

func TestApply_EmptyQueryKeepsOrder(t *testing.T) {
	q, err := query.Parse("")
	require.NoError(t, err)

	results, err := Apply(testDataset(), q)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Dataset order preserved, no sorting.
	assert.Equal(t, "alpha", results[0].Name)
	require.Len(t, results[0].Errors, 2)
	assert.Equal(t, "unbound name x", results[0].Errors[0].Message)
	assert.Equal(t, "bad argument count", results[0].Errors[1].Message)
	require.Len(t, results[0].Bindings, 2)
	assert.Equal(t, "x", results[0].Bindings[0].Key)
	assert.Equal(t, "main", results[0].Bindings[1].Key)
}

func TestApply_BindingTextSpansAllColumns(t *testing.T) {
	// "None" lives in the Result column of the main binding.
	q, err := query.Parse("None")
	require.NoError(t, err)

	results, err := Apply(testDataset(), q)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Bindings, 1)
	assert.Equal(t, "main", results[0].Bindings[0].Key)
}

func TestApply_BadRangeDescriptorIsFatal(t *testing.T) {
	ds := types.Dataset{Modules: []types.Module{{
		Name:   "broken",
		Errors: []types.ErrorRecord{{Range: "1:1\n", Message: "x"}},
	}}}

	q, err := query.Parse("")
	require.NoError(t, err)

	_, err = Apply(ds, q)
	assert.Error(t, err)
}
