package pretty

import (
	"fmt"
	"strings"
)

// SummaryFormatter renders the one-line parse summary under the event table.
type SummaryFormatter struct {
	styles *Styles
}

// NewSummaryFormatter creates a new summary formatter.
func NewSummaryFormatter(styles *Styles) *SummaryFormatter {
	return &SummaryFormatter{styles: styles}
}

// FormatSummary formats the counts of one parsed document.
func (s *SummaryFormatter) FormatSummary(path string, events, definitions int, duration string) string {
	parts := []string{
		s.styles.Bold.Render(path),
		s.styles.SummaryValue.Render(fmt.Sprintf("%d events", events)),
	}

	if definitions > 0 {
		parts = append(parts, s.styles.SummaryValue.Render(fmt.Sprintf("%d definitions", definitions)))
	}
	if duration != "" {
		parts = append(parts, s.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// FormatLanguages formats the canonicalized code-fence languages of a
// document, in first-seen order.
func (s *SummaryFormatter) FormatLanguages(languages []string) string {
	if len(languages) == 0 {
		return ""
	}

	styled := make([]string, 0, len(languages))
	for _, lang := range languages {
		styled = append(styled, s.styles.Language.Render(lang))
	}

	return " " + s.styles.SummaryTitle.Render("languages:") + " " + strings.Join(styled, ", ")
}
