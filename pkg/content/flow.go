// Package content wires the constructs into content types: document (the
// container engine), flow (leaf blocks), and the text and string phrasing
// levels the subtokenizer re-parses linked spans under.
package content

import (
	"github.com/yaklabco/mdtoken/pkg/construct"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// FlowStart parses leaf blocks: blank lines, fenced code, headings, thematic
// breaks, definitions, with paragraph as the fallback. One line at a time;
// the document engine pauses it after every line ending.
func FlowStart(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == tokenizer.EOF {
		return tokenizer.Ok
	}
	return t.Attempt(construct.BlankLine, func(ok bool) tokenizer.StateFunc {
		if ok {
			return flowBlankLineAfter
		}
		return flowBeforeCodeFenced
	})(t)
}

func flowBlankLineAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == tokenizer.EOF {
		return tokenizer.Ok
	}
	t.Enter(mdevent.TokBlankLineEnding)
	t.Consume()
	t.Exit(mdevent.TokBlankLineEnding)
	// Feel free to interrupt.
	t.Interrupt = false
	return tokenizer.Next(FlowStart)
}

func flowBeforeCodeFenced(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Attempt(construct.CodeFencedStart, func(ok bool) tokenizer.StateFunc {
		if ok {
			return flowAfter
		}
		return flowBeforeHeadingAtx
	})(t)
}

func flowBeforeHeadingAtx(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Attempt(construct.HeadingAtxStart, func(ok bool) tokenizer.StateFunc {
		if ok {
			return flowAfter
		}
		return flowBeforeThematicBreak
	})(t)
}

func flowBeforeThematicBreak(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Attempt(construct.ThematicBreakStart, func(ok bool) tokenizer.StateFunc {
		if ok {
			return flowAfter
		}
		return flowBeforeDefinition
	})(t)
}

func flowBeforeDefinition(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Attempt(construct.DefinitionStart, func(ok bool) tokenizer.StateFunc {
		if ok {
			return flowAfter
		}
		return flowBeforeParagraph
	})(t)
}

func flowBeforeParagraph(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Go(construct.ParagraphStart, flowAfter)(t)
}

func flowAfter(t *tokenizer.Tokenizer) tokenizer.State {
	switch t.Current {
	case tokenizer.EOF:
		return tokenizer.Ok
	case '\n':
		t.Enter(mdevent.TokLineEnding)
		t.Consume()
		t.Exit(mdevent.TokLineEnding)
		return tokenizer.Next(FlowStart)
	default:
		panic("content: flow construct stopped before eol/eof")
	}
}
