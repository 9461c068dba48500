package parser

import "github.com/yaklabco/mdtoken/pkg/mdevent"

// ValidateBalance checks that an event stream is balanced:
// - Every Enter has exactly one later matching Exit of the same kind.
// - No pair crosses another pair's boundaries.
// Returns true if valid, false otherwise.
func ValidateBalance(events []mdevent.Event) bool {
	var stack []mdevent.TokenKind

	for _, e := range events {
		switch e.Kind {
		case mdevent.Enter:
			stack = append(stack, e.Token)
		case mdevent.Exit:
			if len(stack) == 0 || stack[len(stack)-1] != e.Token {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}

// ValidateCoverage checks that the spans of the top-level events are
// contiguous and reconstruct [0, contentLen) exactly: no gaps, no overlaps.
// Returns true if valid, false otherwise.
func ValidateCoverage(events []mdevent.Event, contentLen int) bool {
	if len(events) == 0 {
		return contentLen == 0
	}

	depth := 0
	end := 0
	first := true

	for _, e := range events {
		if e.Kind == mdevent.Enter {
			if depth == 0 {
				start := e.Point.Index
				if first {
					if start != 0 {
						return false
					}
					first = false
				} else if start != end {
					return false
				}
			}
			depth++
			continue
		}
		depth--
		if depth == 0 {
			end = e.Point.Index
		}
	}

	return end == contentLen
}
