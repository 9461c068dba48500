package tokenizer

import "math"

// Constructs enumerates which constructs a parse enables.
type Constructs struct {
	HeadingAtx        bool
	ThematicBreak     bool
	BlockQuote        bool
	ListItem          bool
	CodeFenced        bool
	CodeIndented      bool
	Definition        bool
	HardBreakTrailing bool
}

// DefaultConstructs enables everything.
func DefaultConstructs() Constructs {
	return Constructs{
		HeadingAtx:        true,
		ThematicBreak:     true,
		BlockQuote:        true,
		ListItem:          true,
		CodeFenced:        true,
		CodeIndented:      true,
		Definition:        true,
		HardBreakTrailing: true,
	}
}

// Limits holds the numeric knobs of the grammar.
type Limits struct {
	// HeadingAtxSequenceMax caps the opening '#' run of an atx heading.
	HeadingAtxSequenceMax int

	// HardBreakMin is the minimum trailing-space run that forms a hard break.
	HardBreakMin int

	// ThematicBreakMin is the minimum marker count of a thematic break.
	ThematicBreakMin int

	// CodeFencedSequenceMin is the minimum fence length.
	CodeFencedSequenceMin int

	// ListItemValueMax caps the digits of an ordered list marker.
	ListItemValueMax int

	// TabSize bounds construct indentation when indented code is enabled.
	TabSize int
}

// DefaultLimits returns the CommonMark values.
func DefaultLimits() Limits {
	return Limits{
		HeadingAtxSequenceMax: 6,
		HardBreakMin:          2,
		ThematicBreakMin:      3,
		CodeFencedSequenceMin: 3,
		ListItemValueMax:      10,
		TabSize:               4,
	}
}

// ParseState is the shared state of one top-level parse: the immutable
// character buffer and configuration every nested tokenizer reads, plus the
// definition identifiers the document scan accumulates. It lives for exactly
// one Parse call.
type ParseState struct {
	Chars       []rune
	Constructs  Constructs
	Limits      Limits
	Definitions []string
}

// NewParseState wraps chars with default constructs and limits.
func NewParseState(chars []rune) *ParseState {
	return &ParseState{
		Chars:      chars,
		Constructs: DefaultConstructs(),
		Limits:     DefaultLimits(),
	}
}

// IndentMax returns how far a construct may be indented: limited to one tab
// stop less one while indented code is enabled (deeper indentation would be
// code), unbounded otherwise.
func (p *ParseState) IndentMax() int {
	if p.Constructs.CodeIndented {
		return p.Limits.TabSize - 1
	}
	return math.MaxInt
}
