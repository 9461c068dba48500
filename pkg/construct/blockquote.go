package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// BlockQuoteStart opens a block quote container at a `>` marker, after up
// to three columns of indent.
func BlockQuoteStart(t *tokenizer.Tokenizer) tokenizer.State {
	if !t.Parse.Constructs.BlockQuote {
		return tokenizer.Nok
	}
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), blockQuoteBefore)(t)
	}
	return blockQuoteBefore(t)
}

func blockQuoteBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == '>' {
		t.Enter(mdevent.TokBlockQuote)
	}
	return blockQuoteContBefore(t)
}

// BlockQuoteCont matches the continuation prefix of an already open block
// quote on a new line.
func BlockQuoteCont(t *tokenizer.Tokenizer) tokenizer.State {
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), blockQuoteContBefore)(t)
	}
	return blockQuoteContBefore(t)
}

func blockQuoteContBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current != '>' {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokBlockQuotePrefix)
	t.Enter(mdevent.TokBlockQuoteMarker)
	t.Consume()
	t.Exit(mdevent.TokBlockQuoteMarker)
	return tokenizer.Next(blockQuoteContAfter)
}

// One space or tab after the marker belongs to the prefix.
func blockQuoteContAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if isSpaceOrTab(t.Current) {
		t.Enter(mdevent.TokSpaceOrTab)
		t.Consume()
		t.Exit(mdevent.TokSpaceOrTab)
		return tokenizer.Next(blockQuoteContExit)
	}
	return blockQuoteContExit(t)
}

func blockQuoteContExit(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokBlockQuotePrefix)
	return tokenizer.Ok
}
