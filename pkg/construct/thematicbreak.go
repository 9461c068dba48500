package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// ThematicBreakStart begins a thematic break: three or more of the same
// marker, with any amount of interior whitespace, and nothing else on the
// line.
func ThematicBreakStart(t *tokenizer.Tokenizer) tokenizer.State {
	if !t.Parse.Constructs.ThematicBreak {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokThematicBreak)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), thematicBreakBefore)(t)
	}
	return thematicBreakBefore(t)
}

func thematicBreakBefore(t *tokenizer.Tokenizer) tokenizer.State {
	switch t.Current {
	case '*', '-', '_':
		return thematicBreakAtBreak(t.Current, 0)(t)
	}
	return tokenizer.Nok
}

func thematicBreakAtBreak(marker rune, size int) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case (isEOF(t.Current) || isLineEnding(t.Current)) &&
			size >= t.Parse.Limits.ThematicBreakMin:
			t.Exit(mdevent.TokThematicBreak)
			// Feel free to interrupt.
			t.Interrupt = false
			return tokenizer.Ok
		case t.Current == marker:
			t.Enter(mdevent.TokThematicBreakSequence)
			return thematicBreakSequence(marker, size)(t)
		default:
			return tokenizer.Nok
		}
	}
}

func thematicBreakSequence(marker rune, size int) tokenizer.StateFunc {
	var sequence tokenizer.StateFunc
	sequence = func(t *tokenizer.Tokenizer) tokenizer.State {
		if t.Current == marker {
			t.Consume()
			size++
			return tokenizer.Next(sequence)
		}
		t.Exit(mdevent.TokThematicBreakSequence)
		if isSpaceOrTab(t.Current) {
			return t.Go(SpaceOrTab(), thematicBreakAtBreak(marker, size))(t)
		}
		return thematicBreakAtBreak(marker, size)(t)
	}
	return sequence
}
