package construct

import (
	"math"

	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// SpaceOrTab consumes one or more spaces or tabs as a SpaceOrTab token.
func SpaceOrTab() tokenizer.StateFunc {
	return SpaceOrTabMinMax(1, math.MaxInt)
}

// SpaceOrTabMinMax consumes between min and max spaces or tabs. With min 0
// it succeeds without consuming anything; having opened a token it signals
// Nok when the run falls short of min.
func SpaceOrTabMinMax(min, max int) tokenizer.StateFunc {
	var inside func(size int) tokenizer.StateFunc
	inside = func(size int) tokenizer.StateFunc {
		return func(t *tokenizer.Tokenizer) tokenizer.State {
			if isSpaceOrTab(t.Current) && size < max {
				t.Consume()
				return tokenizer.Next(inside(size + 1))
			}
			t.Exit(mdevent.TokSpaceOrTab)
			if size >= min {
				return tokenizer.Ok
			}
			return tokenizer.Nok
		}
	}
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if max > 0 && isSpaceOrTab(t.Current) {
			t.Enter(mdevent.TokSpaceOrTab)
			t.Consume()
			return tokenizer.Next(inside(1))
		}
		if min == 0 {
			return tokenizer.Ok
		}
		return tokenizer.Nok
	}
}
