// Package query parses free-text location-range queries.
//
// The grammar is, informally:
//
//	lineStart [":" colStart] ["-" lineEnd [":" colEnd]] [" "+ text]
//
// with every component optional. "8" means line 8 at any column, "1:2-3"
// means columns 2 through 3 on line 1, and bare words are a pure text query
// over the whole file.
package query

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/diaglens/diaglens/pkg/types"
)

// Query is a parsed range plus a substring to match against candidate text.
// An empty Text matches any candidate.
type Query struct {
	Span types.SourceSpan
	Text string
}

// queryRE captures the numeric range up front and hands the rest to Text.
// All numeric groups are digits-only, so strconv on them cannot fail.
var queryRE = regexp.MustCompile(`^(?:(\d+)(?::(\d+))?(?:-(\d+)(?::(\d+))?)?)? *(.*)$`)

// Parse interprets input as a range query. Every clause of the grammar is
// optional, so any single-line input parses; a failure here means the input
// was not a query at all (embedded newlines) and the caller should abort the
// current pass rather than guess.
func Parse(input string) (Query, error) {
	m := queryRE.FindStringSubmatch(input)
	if m == nil {
		return Query{}, fmt.Errorf("malformed query %q", input)
	}

	lineStart := num(m[1], 1)
	colStart := num(m[2], 1)

	var lineEnd, colEnd int
	switch {
	case m[3] == "":
		// No "-" clause: collapse to the start point, leaving any endpoint
		// that was never written unbounded.
		lineEnd = num(m[1], types.Unbounded)
		colEnd = num(m[2], types.Unbounded)
	case m[4] == "":
		// "-N" is columns lineStart:colStart through lineStart:N. The single
		// trailing number is a column on the same line, not a line number.
		lineEnd = lineStart
		colEnd = num(m[3], types.Unbounded)
	default:
		lineEnd = num(m[3], types.Unbounded)
		colEnd = num(m[4], types.Unbounded)
	}

	return Query{
		Span: types.SourceSpan{
			Start: types.SourcePoint{Line: lineStart, Column: colStart},
			End:   types.SourcePoint{Line: lineEnd, Column: colEnd},
		},
		Text: m[5],
	}, nil
}

// ParseSpan interprets a candidate's range descriptor through the same
// grammar, ignoring any trailing text.
func ParseSpan(s string) (types.SourceSpan, error) {
	q, err := Parse(s)
	if err != nil {
		return types.SourceSpan{}, err
	}
	return q.Span, nil
}

func num(s string, def int) int {
	if s == "" {
		return def
	}
	n, _ := strconv.Atoi(s)
	return n
}
