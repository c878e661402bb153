package diaglens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaglens/diaglens/pkg/store"
	"github.com/diaglens/diaglens/pkg/types"
)

const sampleTrace = `
modules:
  - name: alpha
    errors:
      - range: "1:1-1:10"
        message: "unbound name x"
      - range: "5:1-5:20"
        message: "bad argument count"
    bindings:
      - range: "1:5-1:6"
        key: "x"
        binding: "def x"
        result: "int"
  - name: beta
    errors:
      - range: "2:1-2:8"
        message: "unbound name y"
`

func writeSampleTrace(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTrace), 0o644))
	return path
}

func TestOpen_DatasetFile(t *testing.T) {
	v, err := Open(writeSampleTrace(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, v.Modules())
}

func TestOpen_Datastore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")

	s, err := store.New(store.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.AddModule(types.Module{
		Name:   "gamma",
		Errors: []types.ErrorRecord{{Range: "1:1", Message: "oops"}},
	}))
	require.NoError(t, s.Close())

	v, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma"}, v.Modules())
}

func TestViewer_Query(t *testing.T) {
	v, err := Open(writeSampleTrace(t))
	require.NoError(t, err)

	results, err := v.Query("1 unbound")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "alpha", results[0].Name)
	require.Len(t, results[0].Errors, 1)
	assert.Equal(t, "unbound name x", results[0].Errors[0].Message)
}

func TestViewer_QueryModule(t *testing.T) {
	v, err := Open(writeSampleTrace(t))
	require.NoError(t, err)

	res, err := v.QueryModule("beta", "")
	require.NoError(t, err)
	assert.Len(t, res.Errors, 1)

	_, err = v.QueryModule("missing", "")
	assert.Error(t, err)
}

func TestParseQueryAndOverlaps(t *testing.T) {
	q, err := ParseQuery("1:1-1:5")
	require.NoError(t, err)

	other := types.SourceSpan{
		Start: types.SourcePoint{Line: 1, Column: 5},
		End:   types.SourcePoint{Line: 1, Column: 10},
	}
	assert.True(t, Overlaps(q.Span, other))
}
