package mdevent

// SkipForward returns the first index at or after from whose event's token
// is not one of kinds, or len(events).
func SkipForward(events []Event, from int, kinds ...TokenKind) int {
	for from < len(events) && matchesKind(events[from].Token, kinds) {
		from++
	}
	return from
}

// SkipBackward returns the first index at or before from whose event's token
// is not one of kinds, scanning backward. Stops at 0.
func SkipBackward(events []Event, from int, kinds ...TokenKind) int {
	for from > 0 && matchesKind(events[from].Token, kinds) {
		from--
	}
	return from
}

// SkipToBackward returns the nearest index at or before from whose event's
// token is one of kinds, or -1.
func SkipToBackward(events []Event, from int, kinds ...TokenKind) int {
	for from >= 0 {
		if matchesKind(events[from].Token, kinds) {
			return from
		}
		from--
	}
	return -1
}

func matchesKind(k TokenKind, kinds []TokenKind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
