package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// Data consumes arbitrary text into Data tokens, breaking on line endings
// and on any character in stop, which the caller's own constructs handle.
// Adjacent Data tokens left behind by repeated attempts are merged by a
// resolver registered once per tokenizer.
func Data(stop []rune) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if runeIn(t.Current, stop) {
			t.RegisterResolver("data", resolveData)
			t.Enter(mdevent.TokData)
			t.Consume()
			return tokenizer.Next(dataAtBreak(stop))
		}
		return dataAtBreak(stop)(t)
	}
}

func dataAtBreak(stop []rune) tokenizer.StateFunc {
	var atBreak, inside tokenizer.StateFunc
	atBreak = func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case isEOF(t.Current):
			return tokenizer.Ok
		case isLineEnding(t.Current):
			t.Enter(mdevent.TokLineEnding)
			t.Consume()
			t.Exit(mdevent.TokLineEnding)
			return tokenizer.Next(atBreak)
		case runeIn(t.Current, stop):
			t.RegisterResolver("data", resolveData)
			return tokenizer.Ok
		default:
			t.Enter(mdevent.TokData)
			return inside(t)
		}
	}
	inside = func(t *tokenizer.Tokenizer) tokenizer.State {
		if isEOF(t.Current) || isLineEnding(t.Current) || runeIn(t.Current, stop) {
			t.Exit(mdevent.TokData)
			t.RegisterResolver("data", resolveData)
			return atBreak(t)
		}
		t.Consume()
		return tokenizer.Next(inside)
	}
	return atBreak
}

func runeIn(c rune, set []rune) bool {
	for _, s := range set {
		if c == s {
			return true
		}
	}
	return false
}

// resolveData folds runs of back-to-back Data tokens into one.
func resolveData(t *tokenizer.Tokenizer) {
	index := 0
	for index < len(t.Events) {
		e := t.Events[index]
		if e.Kind == mdevent.Enter && e.Token == mdevent.TokData {
			exitIndex := index + 1
			exitFar := exitIndex
			for exitFar+1 < len(t.Events) && t.Events[exitFar+1].Token == mdevent.TokData {
				exitFar += 2
			}
			if exitFar != exitIndex {
				t.Map.Add(exitIndex, exitFar-exitIndex, nil)
				index = exitFar
			}
		}
		index++
	}
}
