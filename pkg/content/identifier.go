package content

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeIdentifier prepares a definition label for matching: interior
// whitespace runs collapse to one space, edges are trimmed, and the result
// is Unicode case-folded.
func NormalizeIdentifier(value string) string {
	collapsed := strings.Join(strings.Fields(value), " ")
	return cases.Fold().String(collapsed)
}
