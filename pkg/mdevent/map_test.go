package mdevent_test

import (
	"testing"

	"github.com/yaklabco/mdtoken/pkg/mdevent"
)

func event(kind mdevent.EventKind, token mdevent.TokenKind, index int) mdevent.Event {
	return mdevent.Event{
		Kind:  kind,
		Token: token,
		Point: mdevent.Point{Index: index, Line: 1, Column: index + 1},
	}
}

func kinds(events []mdevent.Event) []mdevent.TokenKind {
	out := make([]mdevent.TokenKind, len(events))
	for i, e := range events {
		out[i] = e.Token
	}
	return out
}

func TestEditMap_ConsumeEmptyIsIdentity(t *testing.T) {
	t.Parallel()

	events := []mdevent.Event{
		event(mdevent.Enter, mdevent.TokParagraph, 0),
		event(mdevent.Enter, mdevent.TokData, 0),
		event(mdevent.Exit, mdevent.TokData, 3),
		event(mdevent.Exit, mdevent.TokParagraph, 3),
	}

	var m mdevent.EditMap
	got := m.Consume(events)

	if len(got) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(got))
	}
	for i := range got {
		if got[i] != events[i] {
			t.Errorf("event %d changed: %+v != %+v", i, got[i], events[i])
		}
	}
}

func TestEditMap_InsertAndRemove(t *testing.T) {
	t.Parallel()

	events := []mdevent.Event{
		event(mdevent.Enter, mdevent.TokParagraph, 0),
		event(mdevent.Enter, mdevent.TokData, 0),
		event(mdevent.Exit, mdevent.TokData, 1),
		event(mdevent.Exit, mdevent.TokParagraph, 1),
	}

	var m mdevent.EditMap
	m.Add(1, 2, []mdevent.Event{
		event(mdevent.Enter, mdevent.TokSpaceOrTab, 0),
		event(mdevent.Exit, mdevent.TokSpaceOrTab, 1),
	})
	got := m.Consume(events)

	want := []mdevent.TokenKind{
		mdevent.TokParagraph,
		mdevent.TokSpaceOrTab,
		mdevent.TokSpaceOrTab,
		mdevent.TokParagraph,
	}
	gotKinds := kinds(got)
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, gotKinds)
		}
	}
}

func TestEditMap_SameIndexEditsCompose(t *testing.T) {
	t.Parallel()

	events := []mdevent.Event{
		event(mdevent.Enter, mdevent.TokData, 0),
		event(mdevent.Exit, mdevent.TokData, 2),
	}

	var m mdevent.EditMap
	m.Add(1, 0, []mdevent.Event{event(mdevent.Enter, mdevent.TokSpaceOrTab, 1)})
	m.Add(1, 0, []mdevent.Event{event(mdevent.Exit, mdevent.TokSpaceOrTab, 2)})
	got := m.Consume(events)

	want := []mdevent.TokenKind{
		mdevent.TokData,
		mdevent.TokSpaceOrTab,
		mdevent.TokSpaceOrTab,
		mdevent.TokData,
	}
	gotKinds := kinds(got)
	if len(gotKinds) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(gotKinds))
	}
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, gotKinds)
		}
	}
}

func TestEditMap_ConsumeClearsQueue(t *testing.T) {
	t.Parallel()

	events := []mdevent.Event{
		event(mdevent.Enter, mdevent.TokData, 0),
		event(mdevent.Exit, mdevent.TokData, 1),
	}

	var m mdevent.EditMap
	m.Add(0, 0, []mdevent.Event{event(mdevent.Enter, mdevent.TokParagraph, 0)})
	got := m.Consume(events)
	if len(got) != 3 {
		t.Fatalf("expected 3 events after first consume, got %d", len(got))
	}
	if !m.Empty() {
		t.Fatal("expected map to be empty after consume")
	}

	again := m.Consume(got)
	if len(again) != 3 {
		t.Fatalf("second consume changed length: %d", len(again))
	}
}

func TestEditMap_LinkIndicesShift(t *testing.T) {
	t.Parallel()

	link := &mdevent.Link{Previous: -1, Next: 4, Content: mdevent.ContentText}
	linkBack := &mdevent.Link{Previous: 0, Next: -1, Content: mdevent.ContentText}
	events := []mdevent.Event{
		{Kind: mdevent.Enter, Token: mdevent.TokData, Point: mdevent.Point{Index: 0}, Link: link},
		{Kind: mdevent.Exit, Token: mdevent.TokData, Point: mdevent.Point{Index: 1}},
		{Kind: mdevent.Enter, Token: mdevent.TokLineEnding, Point: mdevent.Point{Index: 1}},
		{Kind: mdevent.Exit, Token: mdevent.TokLineEnding, Point: mdevent.Point{Index: 2}},
		{Kind: mdevent.Enter, Token: mdevent.TokData, Point: mdevent.Point{Index: 2}, Link: linkBack},
		{Kind: mdevent.Exit, Token: mdevent.TokData, Point: mdevent.Point{Index: 3}},
	}

	// Remove the line ending pair between the two linked chunks.
	var m mdevent.EditMap
	m.Add(2, 2, nil)
	got := m.Consume(events)

	if len(got) != 4 {
		t.Fatalf("expected 4 events, got %d", len(got))
	}
	if got[0].Link.Next != 2 {
		t.Errorf("expected head link next 2, got %d", got[0].Link.Next)
	}
	if got[2].Link.Previous != 0 {
		t.Errorf("expected tail link previous 0, got %d", got[2].Link.Previous)
	}
}
