package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// HeadingAtxStart begins an atx heading: up to three columns of indent, one
// to six number signs, then whitespace-separated text and optional closing
// sequences, all on one line.
func HeadingAtxStart(t *tokenizer.Tokenizer) tokenizer.State {
	if !t.Parse.Constructs.HeadingAtx {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokHeadingAtx)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), headingAtxBefore)(t)
	}
	return headingAtxBefore(t)
}

func headingAtxBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == '#' {
		t.Enter(mdevent.TokHeadingAtxSequence)
		return headingAtxSequenceOpen(0)(t)
	}
	return tokenizer.Nok
}

func headingAtxSequenceOpen(size int) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case t.Current == '#' && size < t.Parse.Limits.HeadingAtxSequenceMax:
			t.Consume()
			return tokenizer.Next(headingAtxSequenceOpen(size + 1))
		case isEOF(t.Current) || isLineEnding(t.Current) || isSpaceOrTab(t.Current):
			t.Exit(mdevent.TokHeadingAtxSequence)
			return headingAtxAtBreak(t)
		default:
			return tokenizer.Nok
		}
	}
}

func headingAtxAtBreak(t *tokenizer.Tokenizer) tokenizer.State {
	switch {
	case isEOF(t.Current) || isLineEnding(t.Current):
		t.RegisterResolver("heading_atx", resolveHeadingAtx)
		t.Exit(mdevent.TokHeadingAtx)
		// A heading never leaves anything open to interrupt.
		t.Interrupt = false
		return tokenizer.Ok
	case isSpaceOrTab(t.Current):
		return t.Go(SpaceOrTab(), headingAtxAtBreak)(t)
	case t.Current == '#':
		t.Enter(mdevent.TokHeadingAtxSequence)
		return headingAtxSequenceFurther(t)
	default:
		t.EnterWithContent(mdevent.TokData, mdevent.ContentText)
		return headingAtxData(t)
	}
}

// Closing sequences have no size limit; whether a run closes the heading or
// sits inside the text is decided by the resolver.
func headingAtxSequenceFurther(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current == '#' {
		t.Consume()
		return tokenizer.Next(headingAtxSequenceFurther)
	}
	t.Exit(mdevent.TokHeadingAtxSequence)
	return headingAtxAtBreak(t)
}

func headingAtxData(t *tokenizer.Tokenizer) tokenizer.State {
	if isEOF(t.Current) || isLineEnding(t.Current) || isSpaceOrTab(t.Current) {
		t.Exit(mdevent.TokData)
		return headingAtxAtBreak(t)
	}
	t.Consume()
	return tokenizer.Next(headingAtxData)
}

// resolveHeadingAtx wraps everything from the first to the last text chunk
// of each heading in a HeadingAtxText token, folding the chunks and the
// interior sequences and whitespace into one Data token. Sequences and
// whitespace outside that range are left as heading fluff.
func resolveHeadingAtx(t *tokenizer.Tokenizer) {
	headingInside := false
	dataStart := -1
	dataEnd := -1

	for index := 0; index < len(t.Events); index++ {
		e := t.Events[index]
		switch {
		case e.Token == mdevent.TokHeadingAtx:
			if e.Kind == mdevent.Enter {
				headingInside = true
				break
			}
			if dataStart != -1 {
				t.Map.Add(dataStart, 0, []mdevent.Event{{
					Kind:  mdevent.Enter,
					Token: mdevent.TokHeadingAtxText,
					Point: t.Events[dataStart].Point,
				}})
				t.Map.Add(dataStart+1, dataEnd-dataStart-1, nil)
				t.Map.Add(dataEnd+1, 0, []mdevent.Event{{
					Kind:  mdevent.Exit,
					Token: mdevent.TokHeadingAtxText,
					Point: t.Events[dataEnd].Point,
				}})
			}
			headingInside = false
			dataStart = -1
			dataEnd = -1
		case headingInside && e.Token == mdevent.TokData:
			if e.Kind == mdevent.Enter {
				if dataStart == -1 {
					dataStart = index
				}
			} else {
				dataEnd = index
			}
		}
	}
}
