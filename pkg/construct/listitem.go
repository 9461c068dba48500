package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// ListItemStart opens a list item container: an unordered marker or an
// ordered value plus marker, followed by whitespace that fixes the indent a
// continuation line must reproduce.
func ListItemStart(t *tokenizer.Tokenizer) tokenizer.State {
	if !t.Parse.Constructs.ListItem {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokListItem)
	if isSpaceOrTab(t.Current) {
		return t.Go(SpaceOrTabMinMax(0, t.Parse.IndentMax()), listItemBefore)(t)
	}
	return listItemBefore(t)
}

func listItemBefore(t *tokenizer.Tokenizer) tokenizer.State {
	switch {
	case t.Current == '*' || t.Current == '-':
		// A line that is a thematic break is never a list item.
		return t.Check(ThematicBreakStart, func(ok bool) tokenizer.StateFunc {
			if ok {
				return nok
			}
			return listItemBeforeUnordered
		})(t)
	case t.Current == '+':
		return listItemBeforeUnordered(t)
	case isDigit(t.Current) && (!t.Interrupt || t.Current == '1'):
		// Only a list starting at 1 can interrupt a paragraph.
		return listItemBeforeOrdered(t)
	default:
		return tokenizer.Nok
	}
}

func nok(*tokenizer.Tokenizer) tokenizer.State {
	return tokenizer.Nok
}

func listItemBeforeUnordered(t *tokenizer.Tokenizer) tokenizer.State {
	t.Enter(mdevent.TokListItemPrefix)
	return listItemMarker(t)
}

func listItemBeforeOrdered(t *tokenizer.Tokenizer) tokenizer.State {
	t.Enter(mdevent.TokListItemPrefix)
	t.Enter(mdevent.TokListItemValue)
	return listItemValue(0)(t)
}

func listItemValue(size int) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		switch {
		case (t.Current == '.' || t.Current == ')') && (!t.Interrupt || size < 2):
			t.Exit(mdevent.TokListItemValue)
			return listItemMarker(t)
		case isDigit(t.Current) && size+1 < t.Parse.Limits.ListItemValueMax:
			t.Consume()
			return tokenizer.Next(listItemValue(size + 1))
		default:
			return tokenizer.Nok
		}
	}
}

func listItemMarker(t *tokenizer.Tokenizer) tokenizer.State {
	t.Enter(mdevent.TokListItemMarker)
	t.Consume()
	t.Exit(mdevent.TokListItemMarker)
	return tokenizer.Next(listItemMarkerAfter)
}

func listItemMarkerAfter(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Check(BlankLine, func(blank bool) tokenizer.StateFunc {
		if blank {
			return listItemAfter(true)
		}
		return listItemMarkerAfterFilled
	})(t)
}

func listItemMarkerAfterFilled(t *tokenizer.Tokenizer) tokenizer.State {
	// Up to one tab stop of whitespace joins the prefix; more than that is
	// indented content of the item, so only one character is taken.
	return t.Attempt(listItemWhitespace, func(ok bool) tokenizer.StateFunc {
		if ok {
			return listItemAfter(false)
		}
		return listItemPrefixOther
	})(t)
}

func listItemWhitespace(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Go(SpaceOrTabMinMax(1, t.Parse.Limits.TabSize), listItemWhitespaceAfter)(t)
}

func listItemWhitespaceAfter(t *tokenizer.Tokenizer) tokenizer.State {
	if isSpaceOrTab(t.Current) {
		return tokenizer.Nok
	}
	return tokenizer.Ok
}

func listItemPrefixOther(t *tokenizer.Tokenizer) tokenizer.State {
	if !isSpaceOrTab(t.Current) {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokSpaceOrTab)
	t.Consume()
	t.Exit(mdevent.TokSpaceOrTab)
	return tokenizer.Next(listItemAfter(false))
}

func listItemAfter(blank bool) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if blank && t.Interrupt {
			return tokenizer.Nok
		}
		start := mdevent.SkipToBackward(t.Events, len(t.Events)-1, mdevent.TokListItem)
		prefix := mdevent.SliceFromSpan(t.Parse.Chars, mdevent.Span{
			Start: t.Events[start].Point,
			End:   t.Point,
		}).Len()
		if blank {
			prefix++
		}

		container := t.Container
		container.BlankInitial = blank
		container.Size = prefix

		t.Exit(mdevent.TokListItemPrefix)
		return tokenizer.Ok
	}
}

// ListItemCont matches the continuation of an open list item: a blank line
// (unless the item began blank) or the item's full indent.
func ListItemCont(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Check(BlankLine, func(blank bool) tokenizer.StateFunc {
		if blank {
			return listItemContBlank
		}
		return listItemContFilled
	})(t)
}

func listItemContBlank(t *tokenizer.Tokenizer) tokenizer.State {
	container := t.Container
	if container.BlankInitial {
		return tokenizer.Nok
	}
	return t.Go(SpaceOrTabMinMax(0, container.Size), contOk)(t)
}

func listItemContFilled(t *tokenizer.Tokenizer) tokenizer.State {
	container := t.Container
	container.BlankInitial = false
	return t.Go(SpaceOrTabMinMax(container.Size, container.Size), contOk)(t)
}

func contOk(*tokenizer.Tokenizer) tokenizer.State {
	return tokenizer.Ok
}
