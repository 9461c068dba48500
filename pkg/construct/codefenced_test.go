package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/mdtoken/pkg/construct"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
)

func TestCodeFencedStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		matched bool
	}{
		{name: "backtick fence", input: "```", matched: true},
		{name: "tilde fence", input: "~~~", matched: true},
		{name: "longer sequence", input: "`````", matched: true},
		{name: "with info", input: "```go", matched: true},
		{name: "with info and meta", input: "``` go filename=x", matched: true},
		{name: "indented three columns", input: "   ```", matched: true},
		{name: "too short", input: "``", matched: false},
		{name: "indented four columns", input: "    ```", matched: false},
		{name: "backtick in info of backtick fence", input: "```a`b", matched: false},
		{name: "backtick in info of tilde fence", input: "~~~a`b", matched: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			matched, _ := tryConstruct(t, testCase.input, construct.CodeFencedStart, nil)
			if matched != testCase.matched {
				t.Errorf("input %q: expected matched=%v, got %v", testCase.input, testCase.matched, matched)
			}
		})
	}
}

func TestCodeFenced_InfoAndMetaTokens(t *testing.T) {
	t.Parallel()

	input := "``` go filename=x"
	matched, events := tryConstruct(t, input, construct.CodeFencedStart, nil)
	require.True(t, matched)

	assert.Equal(t, "go", tokenText(input, events, mdevent.TokCodeFencedFenceInfo))
	assert.Equal(t, "filename=x", tokenText(input, events, mdevent.TokCodeFencedFenceMeta))
}

func TestCodeFenced_ClosedBlock(t *testing.T) {
	t.Parallel()

	input := "```\nabc\n```"
	matched, events := tryConstruct(t, input, construct.CodeFencedStart, nil)
	require.True(t, matched)

	assert.Equal(t, "abc", tokenText(input, events, mdevent.TokCodeFlowChunk))

	// The whole block is balanced: the closing fence exits it.
	var depth, fences int
	for _, e := range events {
		switch e.Token {
		case mdevent.TokCodeFenced:
			if e.Kind == mdevent.Enter {
				depth++
			} else {
				depth--
			}
		case mdevent.TokCodeFencedFence:
			if e.Kind == mdevent.Enter {
				fences++
			}
		}
	}
	assert.Zero(t, depth, "code fenced token must be closed")
	assert.Equal(t, 2, fences, "opening and closing fence")
}

func TestCodeFenced_UnclosedAtEOF(t *testing.T) {
	t.Parallel()

	matched, events := tryConstruct(t, "```\nabc", construct.CodeFencedStart, nil)
	require.True(t, matched)

	var fences int
	for _, e := range events {
		if e.Kind == mdevent.Enter && e.Token == mdevent.TokCodeFencedFence {
			fences++
		}
	}
	assert.Equal(t, 1, fences, "only the opening fence")
}

func TestCodeFenced_CloseNeedsSameMarkerAndLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		closed bool
	}{
		{name: "same length", input: "```\na\n```", closed: true},
		{name: "longer close", input: "```\na\n`````", closed: true},
		{name: "shorter close", input: "````\na\n```", closed: false},
		{name: "other marker", input: "```\na\n~~~", closed: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			matched, events := tryConstruct(t, testCase.input, construct.CodeFencedStart, nil)
			require.True(t, matched)

			var fences int
			for _, e := range events {
				if e.Kind == mdevent.Enter && e.Token == mdevent.TokCodeFencedFence {
					fences++
				}
			}
			if testCase.closed {
				assert.Equal(t, 2, fences, "expected a closing fence")
			} else {
				assert.Equal(t, 1, fences, "expected no closing fence")
			}
		})
	}
}

func TestCodeFenced_IndentStrippedFromContent(t *testing.T) {
	t.Parallel()

	// The opening fence's two columns of indent are removed from each
	// content line before the chunk starts.
	input := "  ```\n    a\n  ```"
	matched, events := tryConstruct(t, input, construct.CodeFencedStart, nil)
	require.True(t, matched)

	assert.Equal(t, "  a", tokenText(input, events, mdevent.TokCodeFlowChunk))
}
