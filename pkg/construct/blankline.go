package construct

import (
	"math"

	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// BlankLine matches a line holding only whitespace. It consumes the
// whitespace but not the line ending.
func BlankLine(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Go(SpaceOrTabMinMax(0, math.MaxInt), blankLineAfter)(t)
}

func blankLineAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if isEOF(t.Current) || isLineEnding(t.Current) {
		return tokenizer.Ok
	}
	return tokenizer.Nok
}
