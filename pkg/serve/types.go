package serve

import (
	"encoding/json"

	"github.com/diaglens/diaglens/pkg/filter"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "query" | "modules" | "close"
	Payload json.RawMessage `json:"payload"`
}

// QueryPayload is the payload for "query" requests. An empty Module runs
// the query across every module in the dataset.
type QueryPayload struct {
	Module string `json:"module,omitempty"`
	Query  string `json:"query"`
}

// QueryData is the data field for "query" responses.
type QueryData struct {
	Results []filter.ModuleResult `json:"results"`
}

// ModulesData is the data field for "modules" responses.
type ModulesData struct {
	Modules []string `json:"modules"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "query" | "modules" | "error"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
	Modules int    `json:"modules"`
}
