package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaglens/diaglens/pkg/types"
)

func testDataset() *types.Dataset {
	return &types.Dataset{Modules: []types.Module{
		{
			Name: "alpha",
			Errors: []types.ErrorRecord{
				{Range: "1:1-1:10", Message: "unbound name x"},
				{Range: "5:1-5:20", Message: "bad argument count"},
			},
			Bindings: []types.BindingRecord{
				{Range: "1:5-1:6", Key: "x", Binding: "def x", Result: "int"},
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

func runServer(t *testing.T, input string) []Response {
	t.Helper()

	in := strings.NewReader(input)
	out := &bytes.Buffer{}

	srv := NewServer(testDataset(), in, out)
	err := srv.Run(context.Background())
	require.NoError(t, err) // should exit cleanly on EOF or close

	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var resp Response
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestServer_SendsReadyOnStart(t *testing.T) {
	responses := runServer(t, "")
	require.NotEmpty(t, responses)

	assert.True(t, responses[0].Success)
	assert.Equal(t, "ready", responses[0].Type)

	var ready ReadyData
	require.NoError(t, json.Unmarshal(responses[0].Data, &ready))
	assert.Equal(t, Version, ready.Version)
	assert.Equal(t, 2, ready.Modules)
}

func TestServer_Query(t *testing.T) {
	request := `{"type":"query","payload":{"query":"1 unbound"}}` + "\n"
	responses := runServer(t, request)
	require.Len(t, responses, 2) // ready + query

	resp := responses[1]
	assert.True(t, resp.Success)
	assert.Equal(t, "query", resp.Type)

	var data QueryData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Results, 1)
	assert.Equal(t, "alpha", data.Results[0].Name)
	require.Len(t, data.Results[0].Errors, 1)
	assert.Equal(t, "unbound name x", data.Results[0].Errors[0].Message)
	assert.Empty(t, data.Results[0].Bindings)
}

func TestServer_QuerySingleModule(t *testing.T) {
	request := `{"type":"query","payload":{"module":"beta","query":""}}` + "\n"
	responses := runServer(t, request)
	require.Len(t, responses, 2)

	var data QueryData
	require.NoError(t, json.Unmarshal(responses[1].Data, &data))
	require.Len(t, data.Results, 1)
	assert.Equal(t, "beta", data.Results[0].Name)
	assert.Len(t, data.Results[0].Errors, 1)
}

func TestServer_QueryUnknownModule(t *testing.T) {
	request := `{"type":"query","payload":{"module":"gamma","query":""}}` + "\n"
	responses := runServer(t, request)
	require.Len(t, responses, 2)

	assert.False(t, responses[1].Success)
	assert.Contains(t, responses[1].Error, "gamma")
}

func TestServer_Modules(t *testing.T) {
	request := `{"type":"modules"}` + "\n"
	responses := runServer(t, request)
	require.Len(t, responses, 2)

	var data ModulesData
	require.NoError(t, json.Unmarshal(responses[1].Data, &data))
	assert.Equal(t, []string{"alpha", "beta"}, data.Modules)
}

func TestServer_UnknownRequestType(t *testing.T) {
	request := `{"type":"bogus"}` + "\n"
	responses := runServer(t, request)
	require.Len(t, responses, 2)

	assert.False(t, responses[1].Success)
	assert.Contains(t, responses[1].Error, "bogus")
}

func TestServer_Close(t *testing.T) {
	// Requests after close are never processed.
	request := `{"type":"close"}` + "\n" + `{"type":"modules"}` + "\n"
	responses := runServer(t, request)
	assert.Len(t, responses, 1) // ready only
}

func TestServer_ContextCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	out := &bytes.Buffer{}
	in := pr

	srv := NewServer(testDataset(), in, out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := srv.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
