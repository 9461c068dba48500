package mdevent

import "sort"

// edit is one queued splice: replace the region
// [index, index+remove) of the original list with insert.
type edit struct {
	index  int
	remove int
	insert []Event
}

// EditMap collects deferred edits to an event list and applies them in one
// rebuild. Resolvers queue edits while scanning the pre-edit list; because
// nothing moves until Consume, every index they computed stays valid.
type EditMap struct {
	edits []edit
}

// Add queues an edit at index. Multiple edits at the same index compose in
// call order: removals accumulate and inserts append.
func (m *EditMap) Add(index, remove int, insert []Event) {
	m.add(index, remove, insert, false)
}

// AddBefore queues an edit at index whose inserts precede any already queued
// at the same index.
func (m *EditMap) AddBefore(index, remove int, insert []Event) {
	m.add(index, remove, insert, true)
}

func (m *EditMap) add(index, remove int, insert []Event, before bool) {
	if remove == 0 && len(insert) == 0 {
		return
	}
	for i := range m.edits {
		if m.edits[i].index == index {
			m.edits[i].remove += remove
			if before {
				m.edits[i].insert = append(append([]Event(nil), insert...), m.edits[i].insert...)
			} else {
				m.edits[i].insert = append(m.edits[i].insert, insert...)
			}
			return
		}
	}
	m.edits = append(m.edits, edit{index: index, remove: remove, insert: insert})
}

// Consume applies every queued edit to events in ascending index order in a
// single rebuild, returning the new list and clearing the queue. Links on
// surviving events are shifted to keep pointing at the same events.
// Consuming an empty map returns events unchanged.
func (m *EditMap) Consume(events []Event) []Event {
	if len(m.edits) == 0 {
		return events
	}

	sort.Slice(m.edits, func(i, j int) bool {
		return m.edits[i].index < m.edits[j].index
	})

	// Cumulative shifts: an event at old index i >= threshold moves by delta.
	type jump struct {
		threshold int
		delta     int
	}
	jumps := make([]jump, 0, len(m.edits))
	delta := 0
	grow := 0
	for _, e := range m.edits {
		delta += len(e.insert) - e.remove
		if len(e.insert) > e.remove {
			grow += len(e.insert) - e.remove
		}
		jumps = append(jumps, jump{threshold: e.index + e.remove, delta: delta})
	}
	shift := func(index int) int {
		d := 0
		for _, j := range jumps {
			if index < j.threshold {
				break
			}
			d = j.delta
		}
		return index + d
	}

	// Shift links of the original events before splicing. Inserted events
	// must already carry final-list links (in practice they carry none).
	for i := range events {
		if events[i].Link == nil {
			continue
		}
		if events[i].Link.Previous >= 0 {
			events[i].Link.Previous = shift(events[i].Link.Previous)
		}
		if events[i].Link.Next >= 0 {
			events[i].Link.Next = shift(events[i].Link.Next)
		}
	}

	next := make([]Event, 0, len(events)+grow)
	prev := 0
	for _, e := range m.edits {
		next = append(next, events[prev:e.index]...)
		next = append(next, e.insert...)
		prev = e.index + e.remove
	}
	next = append(next, events[prev:]...)

	m.edits = nil
	return next
}

// Empty reports whether no edits are queued.
func (m *EditMap) Empty() bool {
	return len(m.edits) == 0
}
