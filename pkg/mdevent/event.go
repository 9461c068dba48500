package mdevent

// EventKind distinguishes the two boundary markers of a token.
type EventKind uint8

const (
	Enter EventKind = iota
	Exit
)

// String returns "Enter" or "Exit".
func (k EventKind) String() string {
	if k == Enter {
		return "Enter"
	}
	return "Exit"
}

// ContentType names the grammar a linked span must be re-parsed under.
type ContentType uint8

const (
	// ContentNone marks a span that needs no re-parse.
	ContentNone ContentType = iota

	// ContentText is inline content: whitespace trimming applies at the
	// edges and trailing runs may become hard breaks.
	ContentText

	// ContentString is raw content such as fence info strings: whitespace
	// is kept and hard breaks never form.
	ContentString
)

// String returns the content type's name.
func (c ContentType) String() string {
	switch c {
	case ContentText:
		return "Text"
	case ContentString:
		return "String"
	default:
		return "None"
	}
}

// Link records a re-parse obligation on an Enter event and chains spans of
// the same content across line endings. Previous and Next are indices into
// the owning event list, -1 when the chain ends. The link shares the span's
// characters with the outer buffer; it never owns them.
type Link struct {
	Previous int
	Next     int
	Content  ContentType
}

// NewLink returns an unchained link for the given content type.
func NewLink(content ContentType) *Link {
	return &Link{Previous: -1, Next: -1, Content: content}
}

// Event is one boundary of a token's span.
//
// Events are appended in non-decreasing point order and nest correctly:
// every Enter has exactly one later matching Exit with proper stack nesting.
type Event struct {
	Kind  EventKind
	Token TokenKind
	Point Point
	Link  *Link
}
