package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdtoken/internal/logging"
	"github.com/yaklabco/mdtoken/internal/ui/pretty"
	"github.com/yaklabco/mdtoken/pkg/config"
	"github.com/yaklabco/mdtoken/pkg/langdetect"
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/parser"
)

// stdinPath is the pseudo-path shown when input comes from stdin.
const stdinPath = "<stdin>"

// eventsFlags holds the flags for the events command.
type eventsFlags struct {
	configPath string
	languages  bool
}

func newEventsCommand(color *string) *cobra.Command {
	flags := &eventsFlags{}

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Tokenize a markdown document and print its event stream",
		Long: `Parse a markdown file (or stdin when no file is given) and print the
resulting event stream as a table: one row per enter/exit event, token names
indented by nesting depth, leaf spans shown with their source text.

Examples:
  mdtoken events README.md          Tokenize a file
  cat doc.md | mdtoken events       Tokenize stdin
  mdtoken events --languages doc.md Also list code-fence languages
  mdtoken events --config m.yml doc.md  Use custom constructs and limits`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, flags, args, *color)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a constructs/limits config file")
	cmd.Flags().BoolVar(&flags.languages, "languages", false, "list canonicalized code-fence languages")

	return cmd
}

func runEvents(cmd *cobra.Command, flags *eventsFlags, args []string, colorMode string) error {
	logger := logging.FromContext(cmd.Context())

	opts := parser.DefaultOptions()
	if flags.configPath != "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		opts = cfg.Options()
		logger.Debug("loaded config", logging.FieldConfig, flags.configPath)
	}

	path, content, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("read input", logging.FieldPath, path, logging.FieldBytes, len(content))

	start := time.Now()
	snapshot, err := parser.NewWithOptions(opts).Parse(cmd.Context(), path, content)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	logger.Debug("parsed document",
		logging.FieldEvents, len(snapshot.Events),
		logging.FieldDefinitions, len(snapshot.Definitions),
		logging.FieldDuration, duration,
	)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	formatter := pretty.NewTableFormatter(styles, terminalWidth(out))

	fmt.Fprint(out, formatter.FormatEvents(snapshot.Chars, snapshot.Events))

	summary := pretty.NewSummaryFormatter(styles)
	fmt.Fprintln(out, summary.FormatSummary(path,
		len(snapshot.Events), len(snapshot.Definitions), duration.Round(time.Microsecond).String()))

	if flags.languages {
		if langs := summary.FormatLanguages(fenceLanguages(snapshot)); langs != "" {
			fmt.Fprintln(out, langs)
		}
	}

	return nil
}

// readInput returns the display path and content: the named file, or stdin
// when no argument (or "-") is given.
func readInput(stdin io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return stdinPath, content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	return args[0], content, nil
}

// fenceLanguages collects the canonical language tag of every code fence, in
// first-seen order. Fences without an info string fall back to content
// detection over their chunks.
func fenceLanguages(snapshot *parser.Snapshot) []string {
	var langs []string
	seen := map[string]bool{}
	add := func(lang string) {
		if lang != "" && !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}

	events := snapshot.Events
	for i, e := range events {
		if e.Kind != mdevent.Enter || e.Token != mdevent.TokCodeFenced {
			continue
		}

		// Prefer the fence's own info string.
		info := ""
		depth := 0
	fence:
		for j := i; j < len(events); j++ {
			switch {
			case events[j].Token == mdevent.TokCodeFenced:
				if events[j].Kind == mdevent.Enter {
					depth++
				} else if depth--; depth == 0 {
					break fence
				}
			case events[j].Kind == mdevent.Exit && events[j].Token == mdevent.TokCodeFencedFenceInfo:
				info = mdevent.SliceFromExit(snapshot.Chars, events, j).String()
				break fence
			}
		}

		if info != "" {
			add(langdetect.Canonical(info))
			continue
		}
		if chunk := firstChunk(snapshot, i); chunk != "" {
			add(langdetect.Detect([]byte(chunk)))
		}
	}

	return langs
}

// firstChunk returns the text of the first content chunk of the fence
// starting at index.
func firstChunk(snapshot *parser.Snapshot, index int) string {
	events := snapshot.Events
	depth := 0
	for j := index; j < len(events); j++ {
		switch {
		case events[j].Token == mdevent.TokCodeFenced:
			if events[j].Kind == mdevent.Enter {
				depth++
			} else if depth--; depth == 0 {
				return ""
			}
		case events[j].Kind == mdevent.Exit && events[j].Token == mdevent.TokCodeFlowChunk:
			return mdevent.SliceFromExit(snapshot.Chars, events, j).String()
		}
	}
	return ""
}

// terminalWidth returns the width of the terminal behind w, or zero when w
// is not a terminal; the formatter falls back to its default.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
