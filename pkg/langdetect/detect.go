// Package langdetect resolves code-fence language tags. It uses go-enry to
// canonicalize the aliases found in fence info strings and to guess a
// language for fences that carry none.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langText = "text"

// fenceAliases maps the short fence tags go-enry has no alias for.
//
//nolint:gochecknoglobals // Lookup table
var fenceAliases = map[string]string{
	"py":    "python",
	"sh":    "bash",
	"shell": "bash",
	"zsh":   "bash",
	"js":    "javascript",
	"ts":    "typescript",
	"rb":    "ruby",
	"rs":    "rust",
	"yml":   "yaml",
}

// Canonical resolves a fence info-string tag to its canonical lowercase
// language tag: "golang" becomes "go", "py" becomes "python". Unknown tags
// are returned lowercased as given, so custom tags survive.
func Canonical(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	if lang, ok := fenceAliases[strings.ToLower(tag)]; ok {
		return lang
	}
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}
	return strings.ToLower(tag)
}

// Detect guesses the language of fence content with no info string.
// Returns "text" when detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
