// Package mdevent defines the position-annotated event stream the tokenizer
// produces: points in the source, Enter/Exit events over a token vocabulary,
// and the deferred edit map resolvers use to restructure a finished stream.
package mdevent

// Point is an immutable location in the source character buffer.
//
// Index orders points totally. Line and Column are 1-based. VS counts
// virtual spaces: columns owed by a partially consumed tab. Column math for
// tab expansion lives outside this package; the engine only carries VS
// through and resets it to zero on boundaries it derives itself.
type Point struct {
	Index  int
	Line   int
	Column int
	VS     int
}

// Before reports whether p precedes other in source order.
func (p Point) Before(other Point) bool {
	return p.Index < other.Index
}

// Span is a half-open range between two points.
type Span struct {
	Start Point
	End   Point
}

// Len returns the number of characters the span covers, counting virtual
// spaces on either edge.
func (s Span) Len() int {
	n := s.End.Index - s.Start.Index
	if s.Start.VS > 0 {
		// The tab at Start.Index is partially before the span.
		n--
	}
	return n + s.Start.VS + s.End.VS
}

// SpanFromExit derives the span of the token closed by the Exit event at
// exitIndex, searching backward for the matching Enter.
func SpanFromExit(events []Event, exitIndex int) Span {
	exit := events[exitIndex]
	enterIndex := exitIndex - 1
	for {
		enter := events[enterIndex]
		if enter.Kind == Enter && enter.Token == exit.Token {
			return Span{Start: enter.Point, End: exit.Point}
		}
		enterIndex--
	}
}
