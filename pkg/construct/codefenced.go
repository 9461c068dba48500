package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// codeFence carries the facts a fenced code block needs for its whole
// lifetime: which marker opened it, how long the opening sequence was, and
// how far the opening fence was indented, since that much indentation is
// stripped from every content line.
type codeFence struct {
	marker rune
	size   int
	prefix int
}

// CodeFencedStart begins a fenced code block at a backtick or tilde fence.
// While the block is open the tokenizer is concrete: container probes cannot
// pierce it and lazy lines cannot feed it.
func CodeFencedStart(t *tokenizer.Tokenizer) tokenizer.State {
	if !t.Parse.Constructs.CodeFenced {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokCodeFenced)
	t.Enter(mdevent.TokCodeFencedFence)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), codeFencedBeforeSequenceOpen)(t)
	}
	return codeFencedBeforeSequenceOpen(t)
}

func codeFencedBeforeSequenceOpen(t *tokenizer.Tokenizer) tokenizer.State {
	prefix := 0
	if len(t.Events) > 0 {
		if tail := t.Events[len(t.Events)-1]; tail.Token == mdevent.TokSpaceOrTab {
			prefix = mdevent.SliceFromExit(t.Parse.Chars, t.Events, len(t.Events)-1).Len()
		}
	}

	if t.Current == '`' || t.Current == '~' {
		fence := &codeFence{marker: t.Current, prefix: prefix}
		t.Enter(mdevent.TokCodeFencedFenceSequence)
		return codeFencedSequenceOpen(fence)(t)
	}
	return tokenizer.Nok
}

func codeFencedSequenceOpen(fence *codeFence) tokenizer.StateFunc {
	var open tokenizer.StateFunc
	open = func(t *tokenizer.Tokenizer) tokenizer.State {
		if t.Current == fence.marker {
			fence.size++
			t.Consume()
			return tokenizer.Next(open)
		}
		if fence.size < t.Parse.Limits.CodeFencedSequenceMin {
			return tokenizer.Nok
		}
		t.Exit(mdevent.TokCodeFencedFenceSequence)
		if isSpaceOrTab(t.Current) {
			return t.Go(SpaceOrTab(), codeFencedInfoBefore(fence))(t)
		}
		return codeFencedInfoBefore(fence)(t)
	}
	return open
}

func codeFencedInfoBefore(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if isEOF(t.Current) || isLineEnding(t.Current) {
			t.Exit(mdevent.TokCodeFencedFence)
			// From here to the closing fence, containers cannot form.
			t.Concrete = true
			return codeFencedAtBreak(fence)(t)
		}
		t.Enter(mdevent.TokCodeFencedFenceInfo)
		t.EnterWithContent(mdevent.TokData, mdevent.ContentString)
		return codeFencedInfo(fence)(t)
	}
}

func codeFencedInfo(fence *codeFence) tokenizer.StateFunc {
	var info tokenizer.StateFunc
	info = func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case isEOF(t.Current) || isLineEnding(t.Current):
			t.Exit(mdevent.TokData)
			t.Exit(mdevent.TokCodeFencedFenceInfo)
			return codeFencedInfoBefore(fence)(t)
		case isSpaceOrTab(t.Current):
			t.Exit(mdevent.TokData)
			t.Exit(mdevent.TokCodeFencedFenceInfo)
			return t.Go(SpaceOrTab(), codeFencedMetaBefore(fence))(t)
		case t.Current == '`' && fence.marker == '`':
			return tokenizer.Nok
		default:
			t.Consume()
			return tokenizer.Next(info)
		}
	}
	return info
}

func codeFencedMetaBefore(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if isEOF(t.Current) || isLineEnding(t.Current) {
			return codeFencedInfoBefore(fence)(t)
		}
		t.Enter(mdevent.TokCodeFencedFenceMeta)
		t.EnterWithContent(mdevent.TokData, mdevent.ContentString)
		return codeFencedMeta(fence)(t)
	}
}

func codeFencedMeta(fence *codeFence) tokenizer.StateFunc {
	var meta tokenizer.StateFunc
	meta = func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case isEOF(t.Current) || isLineEnding(t.Current):
			t.Exit(mdevent.TokData)
			t.Exit(mdevent.TokCodeFencedFenceMeta)
			return codeFencedInfoBefore(fence)(t)
		case t.Current == '`' && fence.marker == '`':
			return tokenizer.Nok
		default:
			t.Consume()
			return tokenizer.Next(meta)
		}
	}
	return meta
}

// At an eol inside the block: the block continues only over non-lazy lines,
// and a continuing line may be the closing fence.
func codeFencedAtBreak(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		return t.Check(nonLazyContinuation, func(ok bool) tokenizer.StateFunc {
			if ok {
				return codeFencedAtNonLazyBreak(fence)
			}
			return codeFencedAfter
		})(t)
	}
}

func codeFencedAtNonLazyBreak(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		return t.Attempt(codeFencedCloseStart(fence), func(ok bool) tokenizer.StateFunc {
			if ok {
				return codeFencedAfter
			}
			return codeFencedContentBefore(fence)
		})(t)
	}
}

func codeFencedCloseStart(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Enter(mdevent.TokLineEnding)
		t.Consume()
		t.Exit(mdevent.TokLineEnding)
		return tokenizer.Next(codeFencedBeforeSequenceClose(fence))
	}
}

func codeFencedBeforeSequenceClose(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Enter(mdevent.TokCodeFencedFence)
		if isSpaceOrTab(t.Current) {
			return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), codeFencedAtSequenceClose(fence))(t)
		}
		return codeFencedAtSequenceClose(fence)(t)
	}
}

func codeFencedAtSequenceClose(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if t.Current != fence.marker {
			return tokenizer.Nok
		}
		t.Enter(mdevent.TokCodeFencedFenceSequence)
		return codeFencedSequenceClose(fence, 0)(t)
	}
}

func codeFencedSequenceClose(fence *codeFence, size int) tokenizer.StateFunc {
	var closing tokenizer.StateFunc
	closing = func(t *tokenizer.Tokenizer) tokenizer.State {
		if t.Current == fence.marker {
			size++
			t.Consume()
			return tokenizer.Next(closing)
		}
		if size < fence.size {
			return tokenizer.Nok
		}
		t.Exit(mdevent.TokCodeFencedFenceSequence)
		if isSpaceOrTab(t.Current) {
			return t.Go(SpaceOrTab(), codeFencedSequenceCloseAfter)(t)
		}
		return codeFencedSequenceCloseAfter(t)
	}
	return closing
}

func codeFencedSequenceCloseAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if isEOF(t.Current) || isLineEnding(t.Current) {
		t.Exit(mdevent.TokCodeFencedFence)
		return tokenizer.Ok
	}
	return tokenizer.Nok
}

func codeFencedContentBefore(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Enter(mdevent.TokLineEnding)
		t.Consume()
		t.Exit(mdevent.TokLineEnding)
		return tokenizer.Next(codeFencedContentStart(fence))
	}
}

func codeFencedContentStart(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if isSpaceOrTab(t.Current) {
			return t.Go(SpaceOrTabMinMax(0, fence.prefix), codeFencedBeforeContentChunk(fence))(t)
		}
		return codeFencedBeforeContentChunk(fence)(t)
	}
}

func codeFencedBeforeContentChunk(fence *codeFence) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if isEOF(t.Current) || isLineEnding(t.Current) {
			return codeFencedAtBreak(fence)(t)
		}
		t.Enter(mdevent.TokCodeFlowChunk)
		return codeFencedContentChunk(fence)(t)
	}
}

func codeFencedContentChunk(fence *codeFence) tokenizer.StateFunc {
	var chunk tokenizer.StateFunc
	chunk = func(t *tokenizer.Tokenizer) tokenizer.State {
		if isEOF(t.Current) || isLineEnding(t.Current) {
			t.Exit(mdevent.TokCodeFlowChunk)
			return codeFencedAtBreak(fence)(t)
		}
		t.Consume()
		return tokenizer.Next(chunk)
	}
	return chunk
}

func codeFencedAfter(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokCodeFenced)
	// Content is over; containers may pierce and interrupts are welcome.
	t.Concrete = false
	t.Interrupt = false
	return tokenizer.Ok
}

// nonLazyContinuation matches a line ending that leads into a line the
// containers actually continued. A lazy line must not extend concrete
// content.
func nonLazyContinuation(t *tokenizer.Tokenizer) tokenizer.State {
	if !isLineEnding(t.Current) {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokLineEnding)
	t.Consume()
	t.Exit(mdevent.TokLineEnding)
	return tokenizer.Next(nonLazyContinuationAfter)
}

func nonLazyContinuationAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Lazy {
		return tokenizer.Nok
	}
	return tokenizer.Ok
}
