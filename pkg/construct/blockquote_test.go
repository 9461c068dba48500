package construct_test

import (
	"testing"

	"github.com/yaklabco/mdtoken/pkg/construct"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
)

func TestBlockQuoteStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		matched bool
	}{
		{name: "marker", input: ">", matched: true},
		{name: "marker and space", input: "> a", matched: true},
		{name: "marker without space", input: ">a", matched: true},
		{name: "indented three columns", input: "   > a", matched: true},
		{name: "indented four columns", input: "    > a", matched: false},
		{name: "no marker", input: "a", matched: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			matched, events := tryConstruct(t, testCase.input, construct.BlockQuoteStart, nil)
			if matched != testCase.matched {
				t.Fatalf("input %q: expected matched=%v, got %v", testCase.input, testCase.matched, matched)
			}
			if matched && !hasToken(events, mdevent.TokBlockQuote) {
				t.Error("expected a block quote token to open")
			}
		})
	}
}

func TestBlockQuoteStart_Disabled(t *testing.T) {
	t.Parallel()

	matched, _ := tryConstruct(t, "> a", construct.BlockQuoteStart, disableAll)
	if matched {
		t.Error("expected no match with the construct disabled")
	}
}

func TestBlockQuoteCont(t *testing.T) {
	t.Parallel()

	// The continuation prefix is the marker plus at most one following
	// space or tab; the rest of the line stays for the content.
	matched, events := tryConstruct(t, ">  a", construct.BlockQuoteCont, nil)
	if !matched {
		t.Fatal("expected the continuation to match")
	}
	if hasToken(events, mdevent.TokBlockQuote) {
		t.Error("continuation must not open a new block quote")
	}
	if got := tokenText(">  a", events, mdevent.TokBlockQuotePrefix); got != "> " {
		t.Errorf("expected prefix %q, got %q", "> ", got)
	}

	matched, _ = tryConstruct(t, "a", construct.BlockQuoteCont, nil)
	if matched {
		t.Error("expected no continuation without a marker")
	}
}
