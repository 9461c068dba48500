package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// ResolveWhitespace returns a resolver that splits line-adjacent whitespace
// out of Data tokens. Leading whitespace after a line ending becomes a
// SpaceOrTab token; trailing whitespace before one becomes SpaceOrTab or,
// when hardBreak is set and the run is long enough and spaces only, a
// HardBreakTrailing token. With trimWhole the very first and last Data of
// the region are trimmed as well.
func ResolveWhitespace(hardBreak, trimWhole bool) tokenizer.Resolver {
	return func(t *tokenizer.Tokenizer) {
		for index := 0; index < len(t.Events); index++ {
			e := t.Events[index]
			if e.Kind == mdevent.Exit && e.Token == mdevent.TokData {
				trimStart := (trimWhole && index == 1) ||
					(index >= 2 && t.Events[index-2].Token == mdevent.TokLineEnding)
				trimEnd := (trimWhole && index == len(t.Events)-1) ||
					(index+1 < len(t.Events) && t.Events[index+1].Token == mdevent.TokLineEnding)
				trimData(t, index, trimStart, trimEnd, hardBreak)
			}
		}
	}
}

func trimData(t *tokenizer.Tokenizer, exitIndex int, trimStart, trimEnd, hardBreak bool) {
	slice := mdevent.SliceFromExit(t.Parse.Chars, t.Events, exitIndex)

	if trimEnd {
		vs := slice.After
		diff, spacesOnly := slice.TrailingSpaceOrTab()

		kind := mdevent.TokSpaceOrTab
		if spacesOnly && hardBreak &&
			exitIndex+1 < len(t.Events) &&
			diff >= t.Parse.Limits.HardBreakMin {
			kind = mdevent.TokHardBreakTrailing
		}

		// The whole data is whitespace: relabel in place.
		if diff == len(slice.Chars)+vs {
			t.Events[exitIndex-1].Token = kind
			t.Events[exitIndex].Token = kind
			return
		}

		if diff > 0 || vs > 0 {
			exitPoint := t.Events[exitIndex].Point
			enterPoint := exitPoint
			enterPoint.Index -= diff
			enterPoint.Column -= diff
			enterPoint.VS = 0

			t.Map.Add(exitIndex+1, 0, []mdevent.Event{
				{Kind: mdevent.Enter, Token: kind, Point: enterPoint},
				{Kind: mdevent.Exit, Token: kind, Point: exitPoint},
			})
			t.Events[exitIndex].Point = enterPoint
		}
	}

	if trimStart {
		vs := slice.Before
		index := slice.LeadingSpaceOrTab()

		// The whole data is whitespace: relabel in place.
		if index == len(slice.Chars)+vs {
			t.Events[exitIndex-1].Token = mdevent.TokSpaceOrTab
			t.Events[exitIndex].Token = mdevent.TokSpaceOrTab
			return
		}

		if index > 0 || vs > 0 {
			enterPoint := t.Events[exitIndex-1].Point
			exitPoint := enterPoint
			exitPoint.Index += index
			exitPoint.Column += index
			exitPoint.VS = 0

			t.Map.Add(exitIndex-1, 0, []mdevent.Event{
				{Kind: mdevent.Enter, Token: mdevent.TokSpaceOrTab, Point: enterPoint},
				{Kind: mdevent.Exit, Token: mdevent.TokSpaceOrTab, Point: exitPoint},
			})
			t.Events[exitIndex-1].Point = exitPoint
		}
	}
}
