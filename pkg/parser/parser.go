// Package parser is the high-level entry point: it turns markdown source
// into a finalized, validated event stream snapshot.
package parser

import (
	"context"
	"errors"
	"fmt"

	mdcontent "github.com/yaklabco/mdtoken/pkg/content"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// Options configure which constructs a Parser enables and the grammar's
// numeric limits.
type Options struct {
	Constructs tokenizer.Constructs
	Limits     tokenizer.Limits
}

// DefaultOptions returns the CommonMark defaults.
func DefaultOptions() Options {
	return Options{
		Constructs: tokenizer.DefaultConstructs(),
		Limits:     tokenizer.DefaultLimits(),
	}
}

// Parser parses markdown documents into event streams. A Parser is
// immutable and safe for concurrent use; every Parse call owns its own
// tokenizer state.
type Parser struct {
	opts Options
}

// New creates a parser with the CommonMark defaults.
func New() *Parser {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a parser with explicit options.
func NewWithOptions(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Snapshot is the finalized result of parsing one document.
type Snapshot struct {
	// Path is the file the content came from, verbatim from the caller.
	Path string

	// Content is an immutable copy of the raw input bytes.
	Content []byte

	// Chars is the decoded character buffer event points index into.
	Chars []rune

	// Events is the finalized, balanced event stream.
	Events []mdevent.Event

	// Definitions holds the normalized definition identifiers discovered
	// during the document pass.
	Definitions []string
}

// Parse converts raw markdown bytes into a Snapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Decodes the bytes into the shared character buffer.
//  3. Runs the document pass (containers, flow, resolvers, subtokenization).
//  4. Validates balance and coverage of the finalized event stream.
//
// Malformed markdown is not an error: the grammar is total and the worst
// outcome is a stream of plain paragraphs. An invalid event stream is an
// engine bug surfaced as an error.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	chars := []rune(string(content))
	parse := tokenizer.NewParseState(chars)
	parse.Constructs = p.opts.Constructs
	parse.Limits = p.opts.Limits

	events := mdcontent.Document(parse, mdevent.Point{Index: 0, Line: 1, Column: 1})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if !ValidateBalance(events) {
		return nil, errors.New("invalid event stream: unbalanced enter/exit pairs")
	}
	if !ValidateCoverage(events, len(chars)) {
		return nil, errors.New("invalid event stream: events do not cover content")
	}

	return &Snapshot{
		Path:        path,
		Content:     copyContent(content),
		Chars:       chars,
		Events:      events,
		Definitions: parse.Definitions,
	}, nil
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
