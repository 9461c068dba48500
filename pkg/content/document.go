package content

import (
	"github.com/yaklabco/mdtoken/pkg/construct"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// phase says where container exits are being injected.
type phase uint8

const (
	// phaseAfter closes containers after a line of lazy flow that turned out
	// not to continue them.
	phaseAfter phase = iota
	// phasePrefix closes containers when a new container replaces an
	// existing one on the same line.
	phasePrefix
	// phaseEOF closes whatever is left at the end of input.
	phaseEOF
)

// injectSlot holds one line's container events: the enters parsed from the
// line's prefix, and the exits of containers that closed at that line. Both
// are spliced back around the flow events afterwards.
type injectSlot struct {
	enters []mdevent.Event
	exits  []mdevent.Event
}

// documentInfo is the container engine's per-parse state.
type documentInfo struct {
	// continued counts the containers whose continuation matched on the
	// current line. Containers beyond it are pending removal, not yet
	// closed: a lazy line may still save them.
	continued int

	// index is where the current line's events start in the event list.
	index int

	// inject collects one slot per line.
	inject []injectSlot

	// interruptBefore is the flow's interrupt status after the previous line.
	interruptBefore bool

	// paragraphBefore records whether the previous line of flow ended in a
	// paragraph, one half of the lazy-continuation rule.
	paragraphBefore bool

	// stack holds the open containers.
	stack []tokenizer.ContainerState

	// next is the flow's suspended continuation between lines.
	next tokenizer.StateFunc
}

// Document parses the shared buffer as a complete document: containers per
// line, flow in between, subtokenization of linked spans afterwards. It
// returns the finalized event list and fills parse.Definitions with the
// normalized identifiers the pass discovered.
func Document(parse *tokenizer.ParseState, point mdevent.Point) []mdevent.Event {
	t := tokenizer.New(point, parse)
	state := t.Push(point.Index, len(parse.Chars), tokenizer.Next(documentBefore))
	t.Flush(state, true)

	for index := range t.Events {
		event := t.Events[index]
		if event.Kind == mdevent.Exit && event.Token == mdevent.TokDefinitionLabelString {
			id := NormalizeIdentifier(
				mdevent.SliceFromExit(parse.Chars, t.Events, index).String())
			if !containsIdentifier(parse.Definitions, id) {
				parse.Definitions = append(parse.Definitions, id)
			}
		}
	}

	events := t.Events
	for {
		next, done := Subtokenize(events, parse)
		events = next
		if done {
			break
		}
	}
	return events
}

func containsIdentifier(ids []string, id string) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}

// At the very beginning, perhaps a byte order mark.
func documentBefore(t *tokenizer.Tokenizer) tokenizer.State {
	return t.Attempt(construct.ByteOrderMark, func(bool) tokenizer.StateFunc {
		return documentStart
	})(t)
}

func documentStart(t *tokenizer.Tokenizer) tokenizer.State {
	info := &documentInfo{next: FlowStart}
	return documentLineStart(info)(t)
}

func documentLineStart(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		info.index = len(t.Events)
		info.inject = append(info.inject, injectSlot{})
		info.continued = 0
		// Containers would only be interrupting if we've continued.
		t.Interrupt = false
		return containerExistingBefore(info)(t)
	}
}

// Re-validate the existing containers, outermost first.
func containerExistingBefore(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		if info.continued >= len(info.stack) {
			return containerNewBefore(info)(t)
		}

		container := &info.stack[info.continued]
		cont := construct.BlockQuoteCont
		if container.Kind == tokenizer.ContainerListItem {
			cont = construct.ListItemCont
		}

		t.Container = container
		return t.Attempt(cont, func(ok bool) tokenizer.StateFunc {
			if ok {
				return containerExistingAfter(info)
			}
			return containerExistingMissing(info)
		})(t)
	}
}

// The container did not continue; it is pending removal, not closed: a lazy
// line may still adopt it.
func containerExistingMissing(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Container = nil
		return containerNewBefore(info)(t)
	}
}

func containerExistingAfter(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Container = nil
		info.continued++
		return containerExistingBefore(info)(t)
	}
}

// Probe for new containers: a block quote, else a list item, repeatedly.
func containerNewBefore(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		// With everything continued, restore the flow's past interrupt
		// status, and do not pierce concrete constructs.
		if info.continued == len(info.stack) {
			t.Interrupt = info.interruptBefore
			if t.Concrete {
				return containersAfter(info)(t)
			}
		}

		t.Container = &tokenizer.ContainerState{Kind: tokenizer.ContainerBlockQuote}
		return t.Attempt(construct.BlockQuoteStart, func(ok bool) tokenizer.StateFunc {
			if ok {
				return containerNewAfter(info)
			}
			return func(t *tokenizer.Tokenizer) tokenizer.State {
				t.Container = &tokenizer.ContainerState{Kind: tokenizer.ContainerListItem}
				return t.Attempt(construct.ListItemStart, func(ok bool) tokenizer.StateFunc {
					if ok {
						return containerNewAfter(info)
					}
					return containersAfter(info)
				})(t)
			}
		})(t)
	}
}

func containerNewAfter(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		container := t.Container
		t.Container = nil

		// The container construct left its token open; exits are injected
		// manually later, so take it off the open stack now.
		token := mdevent.TokBlockQuote
		if container.Kind == tokenizer.ContainerListItem {
			token = mdevent.TokListItem
		}
		found := false
		for i := len(t.Stack) - 1; i >= 0; i-- {
			if t.Stack[i] == token {
				t.Stack = append(t.Stack[:i], t.Stack[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			panic("content: container token missing from open stack")
		}

		// A new container after unfinished existing ones replaces them.
		if info.continued != len(info.stack) {
			exitContainers(t, info, phasePrefix)
		}

		info.stack = append(info.stack, *container)
		info.continued++
		info.interruptBefore = false
		t.Interrupt = false
		return containerNewBefore(info)(t)
	}
}

// Containers are settled for this line; hand the rest to flow.
func containersAfter(info *documentInfo) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		// Stash the container events; they are re-injected around the flow
		// events at resolve time.
		slot := &info.inject[len(info.inject)-1]
		slot.enters = append(slot.enters, t.Events[info.index:]...)
		t.Events = t.Events[:info.index]

		t.Lazy = info.continued != len(info.stack)
		t.Interrupt = info.interruptBefore
		t.DefineSkipCurrent()

		state := info.next
		info.next = FlowStart

		// Run flow, pausing after every line ending.
		return t.GoUntil(state,
			func(c rune) bool { return c == '\n' },
			func(result tokenizer.State) tokenizer.StateFunc {
				return documentFlowEnd(info, result)
			})(t)
	}
}

// After a line of flow, or at the end of input.
func documentFlowEnd(info *documentInfo, result tokenizer.State) tokenizer.StateFunc {
	return func(t *tokenizer.Tokenizer) tokenizer.State {
		paragraph := false
		if len(t.Events) > 0 {
			at := mdevent.SkipBackward(t.Events, len(t.Events)-1, mdevent.TokLineEnding)
			paragraph = t.Events[at].Token == mdevent.TokParagraph
		}

		// Lazy continuation: a paragraph line after a paragraph line saves
		// the containers that failed to continue.
		if t.Lazy && info.paragraphBefore && paragraph {
			info.continued = len(info.stack)
		}

		if info.continued != len(info.stack) {
			exitContainers(t, info, phaseAfter)
		}

		info.paragraphBefore = paragraph
		info.interruptBefore = t.Interrupt

		switch result.Status() {
		case tokenizer.StatusOk:
			if len(info.stack) > 0 {
				info.continued = 0
				exitContainers(t, info, phaseEOF)
			}
			documentResolve(t, info)
			return tokenizer.Ok
		case tokenizer.StatusNok:
			panic("content: unexpected nok from flow")
		default:
			info.next = result.Resume()
			return documentLineStart(info)(t)
		}
	}
}

// exitContainers closes the containers beyond info.continued. Except at end
// of input the flow's suspended continuation is flushed first, since the
// closure belongs to the previous line, before the current line's events.
func exitContainers(t *tokenizer.Tokenizer, info *documentInfo, p phase) {
	stackClose := append([]tokenizer.ContainerState(nil), info.stack[info.continued:]...)
	info.stack = info.stack[:info.continued]

	if p != phaseEOF {
		t.DefineSkipCurrent()

		currentEvents := append([]mdevent.Event(nil), t.Events[info.index:]...)
		t.Events = t.Events[:info.index]

		// Flush feeds EOF to settle the suspended flow; the outer step is
		// still mid-line, so the real cursor characters come back after.
		current, previous := t.Current, t.Previous
		next := info.next
		info.next = FlowStart
		t.Flush(tokenizer.Next(next), false)
		t.Current, t.Previous = current, previous

		if p == phasePrefix {
			info.index = len(t.Events)
		}
		t.Events = append(t.Events, currentEvents...)
	}

	exits := make([]mdevent.Event, 0, len(stackClose))
	for i := len(stackClose) - 1; i >= 0; i-- {
		token := mdevent.TokBlockQuote
		if stackClose[i].Kind == tokenizer.ContainerListItem {
			token = mdevent.TokListItem
		}
		exits = append(exits, mdevent.Event{
			Kind:  mdevent.Exit,
			Token: token,
			// Positions are fixed at resolve time.
			Point: t.Point,
		})
	}

	slot := len(info.inject) - 2
	if p == phaseEOF {
		slot = len(info.inject) - 1
	}
	info.inject[slot].exits = append(info.inject[slot].exits, exits...)
	info.interruptBefore = false
}

// documentResolve splices the stashed container events back: each line's
// enters go before that line's flow events, and exits anchor at the first
// line ending of the run of line endings they sit in, so containers close
// before the blank lines that follow them.
func documentResolve(t *tokenizer.Tokenizer, info *documentInfo) {
	index := 0
	firstLineEndingInRun := -1

	for s := range info.inject {
		slot := info.inject[s]

		if len(slot.enters) > 0 {
			firstLineEndingInRun = -1
			t.Map.Add(index, 0, slot.enters)
		}

	scan:
		for index < len(t.Events) {
			e := t.Events[index]

			switch {
			case e.Token == mdevent.TokLineEnding || e.Token == mdevent.TokBlankLineEnding:
				if e.Kind == mdevent.Enter {
					if firstLineEndingInRun == -1 {
						firstLineEndingInRun = index
					}
				} else {
					index++
					break scan
				}
			case e.Token == mdevent.TokSpaceOrTab:
				// Whitespace is allowed inside runs of blank lines.
			case firstLineEndingInRun != -1:
				firstLineEndingInRun = -1
			}
			index++
		}

		if len(slot.exits) > 0 {
			closeIndex := index
			pointRel := t.Point
			if firstLineEndingInRun != -1 {
				closeIndex = firstLineEndingInRun
				pointRel = t.Events[firstLineEndingInRun].Point
			}
			exits := slot.exits
			for i := range exits {
				exits[i].Point = pointRel
			}
			t.Map.Add(closeIndex, 0, exits)
		}
	}
	info.inject = nil

	t.Events = t.Map.Consume(t.Events)
}
