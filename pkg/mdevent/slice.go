package mdevent

import "strings"

// Slice is a read-only view of the characters a span covers. Before and
// After count virtual spaces owed at either edge by partially consumed tabs;
// the partially consumed tab character itself is excluded from Chars.
type Slice struct {
	Chars  []rune
	Before int
	After  int
}

// SliceFromSpan views the characters of span within buf.
func SliceFromSpan(buf []rune, span Span) Slice {
	start := span.Start.Index
	end := span.End.Index
	if span.Start.VS > 0 {
		start++
	}
	return Slice{
		Chars:  buf[start:end],
		Before: span.Start.VS,
		After:  span.End.VS,
	}
}

// SliceFromExit views the characters of the token closed at exitIndex.
func SliceFromExit(buf []rune, events []Event, exitIndex int) Slice {
	return SliceFromSpan(buf, SpanFromExit(events, exitIndex))
}

// Len returns the visible size of the slice, counting virtual spaces.
func (s Slice) Len() int {
	return len(s.Chars) + s.Before + s.After
}

// String serializes the slice, materializing virtual spaces as spaces.
func (s Slice) String() string {
	var b strings.Builder
	b.Grow(s.Len())
	for i := 0; i < s.Before; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(string(s.Chars))
	for i := 0; i < s.After; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// TrailingSpaceOrTab measures the trailing run of spaces and tabs.
// spacesOnly is false when the run contains a tab or the slice ends in a
// partially consumed tab; such runs never qualify as hard breaks.
func (s Slice) TrailingSpaceOrTab() (size int, spacesOnly bool) {
	spacesOnly = s.After == 0
	i := len(s.Chars)
	for i > 0 {
		switch s.Chars[i-1] {
		case ' ':
		case '\t':
			spacesOnly = false
		default:
			return len(s.Chars) - i, spacesOnly
		}
		i--
	}
	return len(s.Chars) - i, spacesOnly
}

// LeadingSpaceOrTab measures the leading run of spaces and tabs.
func (s Slice) LeadingSpaceOrTab() int {
	i := 0
	for i < len(s.Chars) && (s.Chars[i] == ' ' || s.Chars[i] == '\t') {
		i++
	}
	return i
}
