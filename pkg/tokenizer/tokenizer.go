// Package tokenizer implements the resumable, backtracking state machine
// that turns characters into Enter/Exit events. Constructs are written as
// chains of StateFuncs; input can arrive one bounded range at a time and the
// machine resumes exactly where it left off, including mid-construct.
package tokenizer

import (
	"fmt"

	"github.com/yaklabco/mdtoken/pkg/mdevent"
)

// EOF is the character fed to the machine past the end of a range.
const EOF rune = -1

// Resolver is a post-pass over the finished event list. It scans once and
// queues edits on the tokenizer's map; the map is consumed after each
// resolver, so indices must never be cached across resolvers.
type Resolver func(*Tokenizer)

type namedResolver struct {
	name string
	fn   Resolver
}

// Tokenizer drives character consumption for one content region. The event
// list, open-token stack and current point are owned exclusively by the one
// in-flight tokenizer; nested tokenizers run over disjoint sub-ranges.
type Tokenizer struct {
	// Parse is the shared immutable input of the whole parse.
	Parse *ParseState

	// Events is the produced event list, in non-decreasing point order.
	Events []mdevent.Event

	// Map collects deferred edits to Events.
	Map mdevent.EditMap

	// Stack holds the currently open token kinds.
	Stack []mdevent.TokenKind

	// Point is the current location; Point.Index is the feed cursor.
	Point mdevent.Point

	// Current and Previous are the character under the cursor and the last
	// consumed one.
	Current  rune
	Previous rune

	// Interrupt is set when the previous flow line left an interruptible
	// construct (a paragraph) open.
	Interrupt bool

	// Concrete is set while inside a construct that containers cannot
	// pierce, such as fenced code.
	Concrete bool

	// Lazy is set when the current line failed container continuation but
	// may still be adopted by the open paragraph.
	Lazy bool

	// Container is the container state under probe; owned by the document
	// engine between attempts.
	Container *ContainerState

	consumed    bool
	resolvers   []namedResolver
	resolverSet map[string]struct{}
	columnStart map[int]mdevent.Point
}

// New returns a tokenizer positioned at point over the shared parse state.
func New(point mdevent.Point, parse *ParseState) *Tokenizer {
	t := &Tokenizer{
		Parse:       parse,
		Point:       point,
		Previous:    EOF,
		Current:     EOF,
		resolverSet: map[string]struct{}{},
		columnStart: map[int]mdevent.Point{},
	}
	return t
}

func (t *Tokenizer) charAt(index int) rune {
	if index < len(t.Parse.Chars) {
		return t.Parse.Chars[index]
	}
	return EOF
}

// Consume advances past the current character, implicitly adding it to the
// open token. Must be called at most once per fed character and only while a
// token is open; the state function must then return a suspension.
func (t *Tokenizer) Consume() {
	if t.consumed {
		panic("tokenizer: consume called twice for one character")
	}
	if len(t.Stack) == 0 {
		panic("tokenizer: consume with no open token")
	}
	if t.Current == EOF {
		panic("tokenizer: consume at end of input")
	}
	if t.Current == '\n' {
		t.Point.Line++
		t.Point.Column = 1
		t.Point.Index++
		t.accountForPotentialSkip()
	} else {
		t.Point.Column++
		t.Point.Index++
	}
	t.Previous = t.Current
	t.consumed = true
}

// DefineSkip records where content starts on point's line, so that a later
// consume crossing into that line jumps the container prefix.
func (t *Tokenizer) DefineSkip(point mdevent.Point) {
	t.columnStart[point.Line] = point
	t.accountForPotentialSkip()
}

// DefineSkipCurrent records the current position as its line's content start.
func (t *Tokenizer) DefineSkipCurrent() {
	t.DefineSkip(t.Point)
}

func (t *Tokenizer) accountForPotentialSkip() {
	if p, ok := t.columnStart[t.Point.Line]; ok && t.Point.Column == 1 {
		t.Point.Index = p.Index
		t.Point.Column = p.Column
		t.Point.VS = p.VS
	}
}

// Enter opens a token and appends its Enter event at the current point.
func (t *Tokenizer) Enter(kind mdevent.TokenKind) {
	t.enter(kind, nil)
}

// EnterWithContent opens a token whose span must later be re-parsed under
// the given content type.
func (t *Tokenizer) EnterWithContent(kind mdevent.TokenKind, content mdevent.ContentType) {
	t.enter(kind, mdevent.NewLink(content))
}

func (t *Tokenizer) enter(kind mdevent.TokenKind, link *mdevent.Link) {
	t.Stack = append(t.Stack, kind)
	t.Events = append(t.Events, mdevent.Event{
		Kind:  mdevent.Enter,
		Token: kind,
		Point: t.Point,
		Link:  link,
	})
}

// Exit closes the innermost open token, which must be of the given kind;
// a mismatch is an engine bug and aborts loudly.
func (t *Tokenizer) Exit(kind mdevent.TokenKind) {
	if len(t.Stack) == 0 {
		panic(fmt.Sprintf("tokenizer: exit %v with empty stack", kind))
	}
	top := t.Stack[len(t.Stack)-1]
	if top != kind {
		panic(fmt.Sprintf("tokenizer: exit %v but %v is open", kind, top))
	}
	t.Stack = t.Stack[:len(t.Stack)-1]
	t.Events = append(t.Events, mdevent.Event{
		Kind:  mdevent.Exit,
		Token: kind,
		Point: t.Point,
	})
}

// snapshot captures everything Attempt must restore.
type snapshot struct {
	point     mdevent.Point
	previous  rune
	current   rune
	eventsLen int
	stackLen  int
	interrupt bool
	concrete  bool
	lazy      bool
}

func (t *Tokenizer) capture() snapshot {
	return snapshot{
		point:     t.Point,
		previous:  t.Previous,
		current:   t.Current,
		eventsLen: len(t.Events),
		stackLen:  len(t.Stack),
		interrupt: t.Interrupt,
		concrete:  t.Concrete,
		lazy:      t.Lazy,
	}
}

func (t *Tokenizer) restore(s snapshot) {
	t.Point = s.point
	t.Previous = s.previous
	t.Current = s.current
	t.Events = t.Events[:s.eventsLen]
	t.Stack = t.Stack[:s.stackLen]
	t.Interrupt = s.interrupt
	t.Concrete = s.concrete
	t.Lazy = s.lazy
}

// drive runs fn to completion, re-wrapping every suspension so the machine
// can cross range boundaries, and calls finish with the final state. When
// pause is set and a character matching it has been consumed since start,
// the raw continuation is handed to finish instead of being fed further.
func drive(fn StateFunc, pause func(rune) bool, start int, finish func(*Tokenizer, State) State) StateFunc {
	return func(t *Tokenizer) State {
		if pause != nil && t.Point.Index > start && pause(t.Previous) {
			return finish(t, Next(fn))
		}
		state := fn(t)
		if state.status == StatusSuspended {
			return Next(drive(state.next, pause, start, finish))
		}
		return finish(t, state)
	}
}

// Attempt speculatively runs construct from the current point. On Ok every
// event, point move and stack change is kept and done(true) continues; on
// Nok the exact pre-attempt snapshot is restored, including the mode flags,
// and done(false) continues. This is the backtracking primitive.
func (t *Tokenizer) Attempt(construct StateFunc, done func(ok bool) StateFunc) StateFunc {
	return func(t *Tokenizer) State {
		snap := t.capture()
		return drive(construct, nil, t.Point.Index, func(t *Tokenizer, state State) State {
			ok := state.status == StatusOk
			if !ok {
				t.restore(snap)
			}
			return done(ok)(t)
		})(t)
	}
}

// Check runs construct like Attempt but restores the snapshot regardless of
// the outcome; only the boolean survives.
func (t *Tokenizer) Check(construct StateFunc, done func(ok bool) StateFunc) StateFunc {
	return func(t *Tokenizer) State {
		snap := t.capture()
		return drive(construct, nil, t.Point.Index, func(t *Tokenizer, state State) State {
			ok := state.status == StatusOk
			t.restore(snap)
			return done(ok)(t)
		})(t)
	}
}

// Go drives construct to completion and then runs after. Nok propagates
// without rollback; callers that need rollback wrap the whole thing in an
// Attempt.
func (t *Tokenizer) Go(construct, after StateFunc) StateFunc {
	return func(t *Tokenizer) State {
		return drive(construct, nil, t.Point.Index, func(t *Tokenizer, state State) State {
			if state.status == StatusOk {
				return after(t)
			}
			return Nok
		})(t)
	}
}

// GoUntil drives construct but suspends it and hands the raw continuation to
// done as soon as a character matching until has been consumed. The document
// engine uses this to pause flow parsing after every line ending.
func (t *Tokenizer) GoUntil(construct StateFunc, until func(rune) bool, done func(State) StateFunc) StateFunc {
	return func(t *Tokenizer) State {
		return drive(construct, until, t.Point.Index, func(t *Tokenizer, state State) State {
			return done(state)(t)
		})(t)
	}
}

// Push feeds the characters in [min, max) to the machine starting from
// state, returning the state it settles or suspends in. The cursor may jump
// forward to min when spans are non-contiguous (subtokenization chains).
func (t *Tokenizer) Push(min, max int, state State) State {
	if t.Point.Index < min {
		t.Point.Index = min
	}
	for state.status == StatusSuspended && t.Point.Index < max {
		t.Current = t.charAt(t.Point.Index)
		t.consumed = false
		state = state.next(t)
	}
	return state
}

// Flush feeds end-of-input until the machine settles, then optionally runs
// the registered resolvers, consuming the map after each one. A Nok out of
// flush is an engine bug.
func (t *Tokenizer) Flush(state State, resolve bool) {
	for state.status == StatusSuspended {
		t.Current = EOF
		t.consumed = false
		state = state.next(t)
	}
	if state.status != StatusOk {
		panic("tokenizer: flush ended in failure")
	}
	if resolve {
		resolvers := t.resolvers
		t.resolvers = nil
		for _, r := range resolvers {
			r.fn(t)
			t.Events = t.Map.Consume(t.Events)
		}
	}
}

// RegisterResolver queues a resolver under a unique name; a duplicate name
// is a no-op, so constructs may register on every occurrence.
func (t *Tokenizer) RegisterResolver(name string, fn Resolver) {
	if _, ok := t.resolverSet[name]; ok {
		return
	}
	t.resolverSet[name] = struct{}{}
	t.resolvers = append(t.resolvers, namedResolver{name: name, fn: fn})
}

// RegisterResolverBefore is RegisterResolver but the resolver runs before
// all those already registered.
func (t *Tokenizer) RegisterResolverBefore(name string, fn Resolver) {
	if _, ok := t.resolverSet[name]; ok {
		return
	}
	t.resolverSet[name] = struct{}{}
	t.resolvers = append([]namedResolver{{name: name, fn: fn}}, t.resolvers...)
}
