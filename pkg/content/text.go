package content

import (
	"github.com/yaklabco/mdtoken/pkg/construct"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// TextStart parses the text phrasing level: raw data with line-adjacent
// whitespace trimmed and trailing hard breaks recognized.
func TextStart(t *tokenizer.Tokenizer) tokenizer.State {
	t.RegisterResolver("whitespace",
		construct.ResolveWhitespace(t.Parse.Constructs.HardBreakTrailing, true))
	return textBefore(t)
}

func textBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == tokenizer.EOF {
		return tokenizer.Ok
	}
	return t.Go(construct.Data(nil), textBefore)(t)
}

// StringStart parses the string phrasing level: raw data only, no
// whitespace trimming and no hard breaks. Fence info strings use it.
func StringStart(t *tokenizer.Tokenizer) tokenizer.State {
	t.RegisterResolver("whitespace", construct.ResolveWhitespace(false, false))
	return stringBefore(t)
}

func stringBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == tokenizer.EOF {
		return tokenizer.Ok
	}
	return t.Go(construct.Data(nil), stringBefore)(t)
}
