package content

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// Subtokenize runs one pass over events, re-parsing every unvisited linked
// span chain under its content type and splicing the child events in place
// of the chunk pairs. It reports true when no chain heads were left, so
// callers loop until it settles.
func Subtokenize(events []mdevent.Event, parse *tokenizer.ParseState) ([]mdevent.Event, bool) {
	var edits mdevent.EditMap
	done := true

	for index := 0; index < len(events); index++ {
		event := events[index]

		// A chain is entered at its head only.
		if event.Link == nil || event.Link.Previous != -1 {
			continue
		}
		done = false

		child := tokenizer.New(event.Point, parse)
		start := StringStart
		if event.Link.Content == mdevent.ContentText {
			start = TextStart
		}
		state := tokenizer.Next(start)

		// Feed the chain's spans in order. Skip definitions make the child
		// jump the gaps between spans (container prefixes on later lines).
		linkIndex := index
		for linkIndex != -1 {
			enter := events[linkIndex]
			if enter.Point.Index != events[linkIndex+1].Point.Index {
				child.DefineSkip(enter.Point)
				state = child.Push(enter.Point.Index, events[linkIndex+1].Point.Index, state)
			}
			linkIndex = enter.Link.Next
		}
		child.Flush(state, true)

		divideEvents(&edits, events, index, child.Events)
	}

	return edits.Consume(events), done
}

// divideEvents distributes the child events over the chain's chunk pairs:
// an event belongs to the span whose end its point precedes, with the
// remainder going to the last span.
func divideEvents(edits *mdevent.EditMap, events []mdevent.Event, linkIndex int, childEvents []mdevent.Event) {
	type span struct {
		link  int
		start int
	}
	var spans []span
	sliceStart := 0

	for subindex := 0; subindex < len(childEvents); subindex++ {
		current := childEvents[subindex].Point
		end := events[linkIndex+1].Point

		if childEvents[subindex].Kind == mdevent.Enter && current.Index >= end.Index {
			spans = append(spans, span{link: linkIndex, start: sliceStart})
			sliceStart = subindex
			linkIndex = events[linkIndex].Link.Next
		}
	}
	spans = append(spans, span{link: linkIndex, start: sliceStart})

	for i := len(spans) - 1; i >= 0; i-- {
		hi := len(childEvents)
		if i+1 < len(spans) {
			hi = spans[i+1].start
		}
		edits.Add(spans[i].link, 2, childEvents[spans[i].start:hi])
	}
}
