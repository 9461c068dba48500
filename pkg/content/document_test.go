package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/mdtoken/pkg/content"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/parser"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// parseDoc runs the full document pass and checks the fundamental stream
// invariants before handing the events back.
func parseDoc(tb testing.TB, input string) []mdevent.Event {
	tb.Helper()

	chars := []rune(input)
	parse := tokenizer.NewParseState(chars)
	events := content.Document(parse, mdevent.Point{Index: 0, Line: 1, Column: 1})

	require.True(tb, parser.ValidateBalance(events), "stream must be balanced")
	require.True(tb, parser.ValidateCoverage(events, len(chars)), "stream must cover the input")
	return events
}

func enterIndex(events []mdevent.Event, kind mdevent.TokenKind) int {
	for i, e := range events {
		if e.Kind == mdevent.Enter && e.Token == kind {
			return i
		}
	}
	return -1
}

func exitIndex(events []mdevent.Event, kind mdevent.TokenKind) int {
	for i, e := range events {
		if e.Kind == mdevent.Exit && e.Token == kind {
			return i
		}
	}
	return -1
}

func countEnters(events []mdevent.Event, kind mdevent.TokenKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == mdevent.Enter && e.Token == kind {
			n++
		}
	}
	return n
}

// depthAt is the nesting depth just before the event at index.
func depthAt(events []mdevent.Event, index int) int {
	depth := 0
	for _, e := range events[:index] {
		if e.Kind == mdevent.Enter {
			depth++
		} else {
			depth--
		}
	}
	return depth
}

// dataTexts collects the source text of every data token, in order.
func dataTexts(input string, events []mdevent.Event) []string {
	chars := []rune(input)
	var out []string
	for i, e := range events {
		if e.Kind == mdevent.Exit && e.Token == mdevent.TokData {
			out = append(out, mdevent.SliceFromExit(chars, events, i).String())
		}
	}
	return out
}

func tokenText(input string, events []mdevent.Event, kind mdevent.TokenKind) string {
	chars := []rune(input)
	for i, e := range events {
		if e.Kind == mdevent.Exit && e.Token == kind {
			return mdevent.SliceFromExit(chars, events, i).String()
		}
	}
	return ""
}

func TestDocument_Empty(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "")
	assert.Empty(t, events)
}

func TestDocument_Paragraph(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "hello world")
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph))
	assert.Equal(t, []string{"hello world"}, dataTexts("hello world", events))
}

func TestDocument_HeadingResolution(t *testing.T) {
	t.Parallel()

	input := "# a"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokHeadingAtx))
	assert.Equal(t, "#", tokenText(input, events, mdevent.TokHeadingAtxSequence))
	assert.Equal(t, "a", tokenText(input, events, mdevent.TokHeadingAtxText))

	// The text wrapper sits inside the heading.
	heading := enterIndex(events, mdevent.TokHeadingAtx)
	text := enterIndex(events, mdevent.TokHeadingAtxText)
	assert.Greater(t, text, heading)
	assert.Less(t, text, exitIndex(events, mdevent.TokHeadingAtx))
}

func TestDocument_HeadingClosingSequence(t *testing.T) {
	t.Parallel()

	input := "##  aa  ##  "
	events := parseDoc(t, input)

	assert.Equal(t, "aa", tokenText(input, events, mdevent.TokHeadingAtxText),
		"the text wrapper holds only the content between the sequences")
}

func TestDocument_BareHeadingHasNoText(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "###")
	require.Equal(t, 1, countEnters(events, mdevent.TokHeadingAtx))
	assert.Equal(t, -1, enterIndex(events, mdevent.TokHeadingAtxText))
}

func TestDocument_HardBreakTrailing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		brk   bool
	}{
		{name: "two trailing spaces", input: "a  \nb", brk: true},
		{name: "many trailing spaces", input: "a     \nb", brk: true},
		{name: "one trailing space", input: "a \nb", brk: false},
		{name: "trailing spaces at eof", input: "a  ", brk: false},
		{name: "tab in the run", input: "a \t\nb", brk: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			events := parseDoc(t, testCase.input)
			got := enterIndex(events, mdevent.TokHardBreakTrailing) != -1
			if got != testCase.brk {
				t.Errorf("input %q: expected hard break %v, got %v", testCase.input, testCase.brk, got)
			}
		})
	}
}

func TestDocument_HardBreakSpan(t *testing.T) {
	t.Parallel()

	input := "a  \nb"
	events := parseDoc(t, input)

	i := exitIndex(events, mdevent.TokHardBreakTrailing)
	require.NotEqual(t, -1, i)
	span := mdevent.SpanFromExit(events, i)
	assert.Equal(t, 1, span.Start.Index)
	assert.Equal(t, 3, span.End.Index)
}

func TestDocument_ThematicBreak(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "***\na")
	assert.Equal(t, 1, countEnters(events, mdevent.TokThematicBreak))
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph))
}

func TestDocument_BlankLineSplitsParagraphs(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "a\n\nb")
	assert.Equal(t, 2, countEnters(events, mdevent.TokParagraph))
	assert.Equal(t, 1, countEnters(events, mdevent.TokBlankLineEnding))
}

func TestDocument_BlockQuoteLazyContinuation(t *testing.T) {
	t.Parallel()

	// The second line has no marker, but it continues the paragraph, so it
	// is adopted into the quote.
	input := "> a\nb"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokBlockQuote))
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph), "one merged paragraph")
	assert.Equal(t, []string{"a", "b"}, dataTexts(input, events))

	// Everything sits inside the quote; its exit comes last.
	assert.Greater(t, exitIndex(events, mdevent.TokBlockQuote), exitIndex(events, mdevent.TokParagraph))
}

func TestDocument_LazyNeedsParagraphBefore(t *testing.T) {
	t.Parallel()

	// A lazy line after a non-paragraph does not save the quote.
	input := "> ***\nb"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokBlockQuote))
	p := enterIndex(events, mdevent.TokParagraph)
	require.NotEqual(t, -1, p)
	assert.Equal(t, 0, depthAt(events, p), "the paragraph lands outside the quote")
	assert.Less(t, exitIndex(events, mdevent.TokBlockQuote), p)
}

func TestDocument_BlockQuoteClosesBeforeBlankLine(t *testing.T) {
	t.Parallel()

	input := "> a\n\nb"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokBlockQuote))
	bqExit := exitIndex(events, mdevent.TokBlockQuote)
	blank := enterIndex(events, mdevent.TokBlankLineEnding)
	require.NotEqual(t, -1, blank)
	assert.Less(t, bqExit, blank, "the quote closes before the blank line that follows it")

	// The final paragraph is back at the top level.
	last := -1
	for i, e := range events {
		if e.Kind == mdevent.Enter && e.Token == mdevent.TokParagraph {
			last = i
		}
	}
	assert.Equal(t, 0, depthAt(events, last))
}

func TestDocument_ListItemContinuation(t *testing.T) {
	t.Parallel()

	input := "- a\n  b"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokListItem))
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph), "the indented line continues the item")
	assert.Equal(t, []string{"a", "b"}, dataTexts(input, events))
}

func TestDocument_ListItemLazyContinuation(t *testing.T) {
	t.Parallel()

	input := "- a\nb"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokListItem))
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph))
	assert.Greater(t, exitIndex(events, mdevent.TokListItem), exitIndex(events, mdevent.TokParagraph))
}

func TestDocument_ListItemBlankLineContinues(t *testing.T) {
	t.Parallel()

	// A blank line does not end an item that started with content; the
	// indented line after it is still inside.
	input := "- a\n\n  b"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokListItem))
	assert.Equal(t, 2, countEnters(events, mdevent.TokParagraph))
	for i, e := range events {
		if e.Kind == mdevent.Enter && e.Token == mdevent.TokParagraph {
			assert.Greater(t, depthAt(events, i), 0, "both paragraphs stay inside the item")
		}
	}
}

func TestDocument_ListInterruptsParagraph(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "a\n- b")
	assert.Equal(t, 2, countEnters(events, mdevent.TokParagraph))
	assert.Equal(t, 1, countEnters(events, mdevent.TokListItem))
}

func TestDocument_OrderedListNotStartingAtOneDoesNotInterrupt(t *testing.T) {
	t.Parallel()

	input := "a\n2. b"
	events := parseDoc(t, input)

	assert.Equal(t, 0, countEnters(events, mdevent.TokListItem))
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph), "the line joins the paragraph")
}

func TestDocument_NestedContainers(t *testing.T) {
	t.Parallel()

	input := "> - a"
	events := parseDoc(t, input)

	bq := enterIndex(events, mdevent.TokBlockQuote)
	li := enterIndex(events, mdevent.TokListItem)
	require.NotEqual(t, -1, bq)
	require.NotEqual(t, -1, li)
	assert.Less(t, bq, li, "the quote opens before the item")
	assert.Less(t, exitIndex(events, mdevent.TokListItem), exitIndex(events, mdevent.TokBlockQuote))
}

func TestDocument_CodeFencedInBlockQuote(t *testing.T) {
	t.Parallel()

	input := "> ```\n> a\n> ```"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokBlockQuote))
	require.Equal(t, 1, countEnters(events, mdevent.TokCodeFenced))
	assert.Equal(t, "a", tokenText(input, events, mdevent.TokCodeFlowChunk))
	assert.Less(t, exitIndex(events, mdevent.TokCodeFenced), exitIndex(events, mdevent.TokBlockQuote))
}

func TestDocument_LazyLineDoesNotFeedCodeFence(t *testing.T) {
	t.Parallel()

	// Concrete content rejects lazy lines: the unmarked line is a new
	// paragraph outside the quote, not fenced content.
	input := "> ```\nb"
	events := parseDoc(t, input)

	require.Equal(t, 1, countEnters(events, mdevent.TokCodeFenced))
	assert.Equal(t, 0, countEnters(events, mdevent.TokCodeFlowChunk))

	p := enterIndex(events, mdevent.TokParagraph)
	require.NotEqual(t, -1, p)
	assert.Equal(t, 0, depthAt(events, p))
	assert.Less(t, exitIndex(events, mdevent.TokBlockQuote), p)
}

func TestDocument_CodeFenceInfoString(t *testing.T) {
	t.Parallel()

	input := "```go\nx := 1\n```"
	events := parseDoc(t, input)

	assert.Equal(t, "go", tokenText(input, events, mdevent.TokCodeFencedFenceInfo))
	assert.Equal(t, "x := 1", tokenText(input, events, mdevent.TokCodeFlowChunk))
}

func TestDocument_ByteOrderMark(t *testing.T) {
	t.Parallel()

	input := "\uFEFF# a"
	events := parseDoc(t, input)

	assert.Equal(t, 1, countEnters(events, mdevent.TokByteOrderMark))
	assert.Equal(t, 1, countEnters(events, mdevent.TokHeadingAtx), "the heading still parses after the mark")
}

func TestDocument_DataNotMergedAcrossLineEndings(t *testing.T) {
	t.Parallel()

	input := "a\nb"
	events := parseDoc(t, input)

	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph))
	assert.Equal(t, []string{"a", "b"}, dataTexts(input, events))
}

func TestDocument_StreamInvariantsGrabBag(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"\n",
		"\n\n\n",
		"> > > deep",
		"- - nested? no, thematic check",
		"1. a\n2. b",
		"> a\n> ```\n> b\n> ```",
		"# h\n\n- a\n  - b\n\n> q",
		"a\tb",
		"   a",
		"```\nunclosed",
	}

	for _, input := range inputs {
		// parseDoc asserts balance and coverage.
		parseDoc(t, input)
	}
}

func TestDocument_ContentSurvivesContainerClosure(t *testing.T) {
	t.Parallel()

	// Every input closes a container mid-document; the flow that follows the
	// closure must still be tokenized. parseDoc asserts coverage, so a
	// truncated stream fails loudly.
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{name: "paragraph after quote and blank", input: "> a\n\nb", text: "b"},
		{name: "second ordered item", input: "1. a\n2. b", text: "b"},
		{name: "item after quote", input: "> a\n- b", text: "b"},
		{name: "paragraph after lazy fence line", input: "> ```\nx\n```", text: "x"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			events := parseDoc(t, testCase.input)
			texts := dataTexts(testCase.input, events)
			require.NotEmpty(t, texts)
			assert.Equal(t, testCase.text, texts[len(texts)-1],
				"flow after the closure must survive")
		})
	}
}

func TestDocument_BlankListItemsCoverInput(t *testing.T) {
	t.Parallel()

	events := parseDoc(t, "- \n- \n")
	assert.Equal(t, 2, countEnters(events, mdevent.TokListItem))
}

func TestDocument_DefinitionIdentifiers(t *testing.T) {
	t.Parallel()

	input := "[Alpha]: /url\n[alpha]: /other\n[Beta]: x \"t\""
	chars := []rune(input)
	parse := tokenizer.NewParseState(chars)
	events := content.Document(parse, mdevent.Point{Index: 0, Line: 1, Column: 1})

	require.True(t, parser.ValidateBalance(events))
	require.True(t, parser.ValidateCoverage(events, len(chars)))

	assert.Equal(t, 3, countEnters(events, mdevent.TokDefinition))
	// Identifiers are case-folded and deduplicated.
	assert.Equal(t, []string{"alpha", "beta"}, parse.Definitions)
}

func TestDocument_DefinitionCannotInterruptParagraph(t *testing.T) {
	t.Parallel()

	input := "a\n[x]: y"
	chars := []rune(input)
	parse := tokenizer.NewParseState(chars)
	events := content.Document(parse, mdevent.Point{Index: 0, Line: 1, Column: 1})

	require.True(t, parser.ValidateBalance(events))
	require.True(t, parser.ValidateCoverage(events, len(chars)))

	assert.Equal(t, 0, countEnters(events, mdevent.TokDefinition))
	assert.Empty(t, parse.Definitions)
	assert.Equal(t, 1, countEnters(events, mdevent.TokParagraph))
}

func TestDocument_DefinitionInBlockQuote(t *testing.T) {
	t.Parallel()

	input := "> [a]: x"
	chars := []rune(input)
	parse := tokenizer.NewParseState(chars)
	events := content.Document(parse, mdevent.Point{Index: 0, Line: 1, Column: 1})

	require.True(t, parser.ValidateBalance(events))
	require.True(t, parser.ValidateCoverage(events, len(chars)))

	assert.Equal(t, 1, countEnters(events, mdevent.TokDefinition))
	assert.Equal(t, []string{"a"}, parse.Definitions)
}
