package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// DefinitionStart begins a link reference definition: up to three columns of
// indent, a bracketed label, a colon, a destination and an optional quoted
// title, all on one line. A definition cannot interrupt a paragraph.
func DefinitionStart(t *tokenizer.Tokenizer) tokenizer.State {
	if !t.Parse.Constructs.Definition || t.Interrupt {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokDefinition)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), definitionBefore)(t)
	}
	return definitionBefore(t)
}

func definitionBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current != '[' {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokDefinitionLabel)
	t.Enter(mdevent.TokDefinitionLabelMarker)
	t.Consume()
	return tokenizer.Next(definitionLabelAfterOpen)
}

func definitionLabelAfterOpen(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokDefinitionLabelMarker)
	if t.Current == ']' {
		// An empty label is not a definition.
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokDefinitionLabelString)
	return definitionLabelInside(false)(t)
}

func definitionLabelInside(content bool) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case isEOF(t.Current) || isLineEnding(t.Current) || t.Current == '[':
			return tokenizer.Nok
		case t.Current == ']':
			if !content {
				return tokenizer.Nok
			}
			t.Exit(mdevent.TokDefinitionLabelString)
			t.Enter(mdevent.TokDefinitionLabelMarker)
			t.Consume()
			return tokenizer.Next(definitionLabelAfterClose)
		default:
			content = content || !isSpaceOrTab(t.Current)
			t.Consume()
			return tokenizer.Next(definitionLabelInside(content))
		}
	}
}

func definitionLabelAfterClose(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokDefinitionLabelMarker)
	t.Exit(mdevent.TokDefinitionLabel)
	if t.Current != ':' {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokDefinitionMarker)
	t.Consume()
	return tokenizer.Next(definitionMarkerAfter)
}

func definitionMarkerAfter(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokDefinitionMarker)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTab(), definitionDestinationBefore)(t)
	}
	return definitionDestinationBefore(t)
}

func definitionDestinationBefore(t *tokenizer.Tokenizer) tokenizer.State {
	if isEOF(t.Current) || isLineEnding(t.Current) {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokDefinitionDestination)
	return definitionDestination(t)
}

func definitionDestination(t *tokenizer.Tokenizer) tokenizer.State {
	if isEOF(t.Current) || isLineEnding(t.Current) || isSpaceOrTab(t.Current) {
		t.Exit(mdevent.TokDefinitionDestination)
		return definitionDestinationAfter(t)
	}
	t.Consume()
	return tokenizer.Next(definitionDestination)
}

func definitionDestinationAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTab(), definitionTitleBefore)(t)
	}
	return definitionAtEnd(t)
}

func definitionTitleBefore(t *tokenizer.Tokenizer) tokenizer.State {
	marker := t.Current
	switch marker {
	case '"', '\'':
	case '(':
		marker = ')'
	default:
		return definitionAtEnd(t)
	}
	t.Enter(mdevent.TokDefinitionTitle)
	t.Consume()
	return tokenizer.Next(definitionTitleInside(marker))
}

func definitionTitleInside(marker rune) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case isEOF(t.Current) || isLineEnding(t.Current):
			return tokenizer.Nok
		case t.Current == marker:
			t.Consume()
			return tokenizer.Next(definitionTitleAfter)
		default:
			t.Consume()
			return tokenizer.Next(definitionTitleInside(marker))
		}
	}
}

func definitionTitleAfter(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokDefinitionTitle)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTab(), definitionAtEnd)(t)
	}
	return definitionAtEnd(t)
}

func definitionAtEnd(t *tokenizer.Tokenizer) tokenizer.State {
	if !isEOF(t.Current) && !isLineEnding(t.Current) {
		return tokenizer.Nok
	}
	t.Exit(mdevent.TokDefinition)
	// A definition leaves nothing open to interrupt.
	t.Interrupt = false
	return tokenizer.Ok
}
