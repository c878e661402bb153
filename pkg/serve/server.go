// Package serve exposes the query engine as a long-lived NDJSON server
// over stdin/stdout, for editor and GUI frontends.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/diaglens/diaglens/pkg/filter"
	"github.com/diaglens/diaglens/pkg/query"
	"github.com/diaglens/diaglens/pkg/types"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers range queries over a loaded dataset.
type Server struct {
	dataset *types.Dataset
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server over a loaded dataset.
func NewServer(ds *types.Dataset, in io.Reader, out io.Writer) *Server {
	return &Server{
		dataset: ds,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	// Send ready signal
	s.sendReady()

	// Use buffered channels for incoming requests
	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until stdin closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					// No more pending requests
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case "query":
		s.handleQuery(req.Payload)
	case "modules":
		s.handleModules()
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	data, _ := json.Marshal(ReadyData{
		Version: Version,
		Modules: len(s.dataset.Modules),
	})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "ready",
		Data:    data,
	})
}

func (s *Server) handleQuery(payload json.RawMessage) {
	var p QueryPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("query", err.Error())
		return
	}

	q, err := query.Parse(p.Query)
	if err != nil {
		s.sendError("query", err.Error())
		return
	}

	var results []filter.ModuleResult
	if p.Module == "" {
		results, err = filter.Apply(*s.dataset, q)
	} else {
		mod := s.dataset.Module(p.Module)
		if mod == nil {
			s.sendError("query", "unknown module: "+p.Module)
			return
		}
		var res filter.ModuleResult
		res, err = filter.ApplyModule(*mod, q)
		if err == nil {
			results = []filter.ModuleResult{res}
		}
	}
	if err != nil {
		s.sendError("query", err.Error())
		return
	}
	if results == nil {
		results = []filter.ModuleResult{}
	}

	data, _ := json.Marshal(QueryData{Results: results})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "query",
		Data:    data,
	})
}

func (s *Server) handleModules() {
	data, _ := json.Marshal(ModulesData{Modules: s.dataset.ModuleNames()})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "modules",
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
