package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdtoken/pkg/mdevent"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // EVENT, TOKEN, POINT, TEXT
	minTokenWidth    = 12
	minPointWidth    = 10
	minTextWidth     = 16
	indentPerDepth   = 2
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow is one event rendered as a table row.
type TableRow struct {
	Kind  string
	Token string
	Point string
	Text  string
	Depth int
}

// TableFormatter formats an event stream as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatEvents renders the event stream over its character buffer. Token
// names are indented by nesting depth, and exit rows of leaf tokens show the
// source text the pair spans.
func (t *TableFormatter) FormatEvents(chars []rune, events []mdevent.Event) string {
	rows := t.collectRows(chars, events)
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// collectRows flattens the event stream into rows.
func (t *TableFormatter) collectRows(chars []rune, events []mdevent.Event) []TableRow {
	rows := make([]TableRow, 0, len(events))
	depth := 0

	for i, e := range events {
		if e.Kind == mdevent.Exit {
			depth--
		}

		row := TableRow{
			Kind:  strings.ToLower(e.Kind.String()),
			Token: e.Token.String(),
			Point: fmt.Sprintf("%d:%d/%d", e.Point.Line, e.Point.Column, e.Point.Index),
			Depth: depth,
		}
		if e.Kind == mdevent.Exit && isLeafToken(e.Token) {
			row.Text = printableText(mdevent.SliceFromExit(chars, events, i).String())
		}
		rows = append(rows, row)

		if e.Kind == mdevent.Enter {
			depth++
		}
	}

	return rows
}

// isLeafToken reports whether a token never contains other tokens, so its
// span is worth printing.
func isLeafToken(kind mdevent.TokenKind) bool {
	switch kind {
	case mdevent.TokData, mdevent.TokSpaceOrTab, mdevent.TokLineEnding,
		mdevent.TokBlankLineEnding, mdevent.TokHardBreakTrailing,
		mdevent.TokByteOrderMark, mdevent.TokHeadingAtxSequence,
		mdevent.TokThematicBreakSequence, mdevent.TokBlockQuoteMarker,
		mdevent.TokListItemMarker, mdevent.TokListItemValue,
		mdevent.TokCodeFencedFenceSequence, mdevent.TokCodeFlowChunk,
		mdevent.TokDefinitionLabelMarker, mdevent.TokDefinitionLabelString,
		mdevent.TokDefinitionMarker, mdevent.TokDefinitionDestination,
		mdevent.TokDefinitionTitle:
		return true
	default:
		return false
	}
}

// printableText makes a span safe for a single table cell.
func printableText(text string) string {
	replacer := strings.NewReplacer("\n", "\\n", "\t", "\\t", "\uFEFF", "\\ufeff")
	return replacer.Replace(text)
}

type columnWidths struct {
	token int
	point int
	text  int
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		token: minTokenWidth,
		point: minPointWidth,
		text:  minTextWidth,
	}

	for _, row := range rows {
		token := row.Depth*indentPerDepth + len(row.Token)
		if token > widths.token {
			widths.token = token
		}
		if len(row.Point) > widths.point {
			widths.point = len(row.Point)
		}
		if len(row.Text) > widths.text {
			widths.text = len(row.Text)
		}
	}

	// Constrain to terminal width by shrinking the text column first.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.text = max(minTextWidth, widths.text-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	const kindWidth = 5 // "enter"
	return kindWidth + widths.token + widths.point + widths.text +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-5s  %-*s  %-*s  %-*s",
		"EVENT",
		widths.token, "TOKEN",
		widths.point, "POINT",
		widths.text, "TEXT",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	kindStyle := t.styles.Enter
	if row.Kind == "exit" {
		kindStyle = t.styles.Exit
	}

	token := strings.Repeat(" ", row.Depth*indentPerDepth) + row.Token
	token = truncateString(token, widths.token)
	point := truncateString(row.Point, widths.point)
	text := truncateString(row.Text, widths.text)

	return fmt.Sprintf(" %s  %s  %s  %s",
		kindStyle.Render(fmt.Sprintf("%-5s", row.Kind)),
		t.styles.Token.Render(fmt.Sprintf("%-*s", widths.token, token)),
		t.styles.Position.Render(fmt.Sprintf("%-*s", widths.point, point)),
		t.styles.Text.Render(text),
	)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
