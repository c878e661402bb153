package types

import "fmt"

// Unbounded stands in for an endpoint the query left unspecified.
// Comparisons against it behave as "to end of file" / "to end of line".
const Unbounded = 1 << 30

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int
	Column int
}

// SourceSpan is a closed start-end line:column range.
type SourceSpan struct {
	Start SourcePoint
	End   SourcePoint
}

// String renders the span in the same textual grammar queries use.
func (s SourceSpan) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

func (p SourcePoint) String() string {
	if p.Column == Unbounded {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
