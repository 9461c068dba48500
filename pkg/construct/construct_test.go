package construct_test

import (
	"testing"

	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// tryConstruct attempts fn over the whole input and reports whether it
// matched, along with the events it produced.
func tryConstruct(tb testing.TB, input string, fn tokenizer.StateFunc, prepare func(*tokenizer.Tokenizer)) (bool, []mdevent.Event) {
	tb.Helper()

	parse := tokenizer.NewParseState([]rune(input))
	tok := tokenizer.New(mdevent.Point{Index: 0, Line: 1, Column: 1}, parse)
	if prepare != nil {
		prepare(tok)
	}

	matched := false
	state := tok.Push(0, len(parse.Chars), tokenizer.Next(tok.Attempt(fn, func(ok bool) tokenizer.StateFunc {
		matched = ok
		return func(*tokenizer.Tokenizer) tokenizer.State {
			return tokenizer.Ok
		}
	})))
	tok.Flush(state, true)

	return matched, tok.Events
}

// disableAll turns every construct off.
func disableAll(tok *tokenizer.Tokenizer) {
	tok.Parse.Constructs = tokenizer.Constructs{}
}

func tokenKinds(events []mdevent.Event) []mdevent.TokenKind {
	out := make([]mdevent.TokenKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Token)
	}
	return out
}

// hasToken reports whether any event carries the kind.
func hasToken(events []mdevent.Event, kind mdevent.TokenKind) bool {
	for _, e := range events {
		if e.Token == kind {
			return true
		}
	}
	return false
}

// tokenText returns the source text of the first token of the kind.
func tokenText(input string, events []mdevent.Event, kind mdevent.TokenKind) string {
	chars := []rune(input)
	for i, e := range events {
		if e.Kind == mdevent.Exit && e.Token == kind {
			return mdevent.SliceFromExit(chars, events, i).String()
		}
	}
	return ""
}
