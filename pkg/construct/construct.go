// Package construct holds the individual grammars that plug into the
// tokenizer: block containers, flow leaves, shared partials and the
// post-pass resolvers. Every construct is a chain of state functions that
// signals Ok or Nok; failure is absorbed by the caller's attempt, never
// surfaced.
package construct

import "github.com/yaklabco/mdtoken/pkg/tokenizer"

func isSpaceOrTab(c rune) bool {
	return c == ' ' || c == '\t'
}

func isLineEnding(c rune) bool {
	return c == '\n'
}

func isEOF(c rune) bool {
	return c == tokenizer.EOF
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
