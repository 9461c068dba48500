// Package config defines the file-backed tokenizer configuration: construct
// feature flags and grammar limits with YAML bindings.
package config

import (
	"github.com/yaklabco/mdtoken/pkg/parser"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// Config is the top-level configuration document.
type Config struct {
	Constructs ConstructsConfig `yaml:"constructs"`
	Limits     LimitsConfig     `yaml:"limits"`
}

// ConstructsConfig toggles individual grammar constructs.
type ConstructsConfig struct {
	HeadingAtx        bool `yaml:"heading_atx"`
	ThematicBreak     bool `yaml:"thematic_break"`
	BlockQuote        bool `yaml:"block_quote"`
	ListItem          bool `yaml:"list_item"`
	CodeFenced        bool `yaml:"code_fenced"`
	CodeIndented      bool `yaml:"code_indented"`
	Definition        bool `yaml:"definition"`
	HardBreakTrailing bool `yaml:"hard_break_trailing"`
}

// LimitsConfig holds the numeric knobs of the grammar.
type LimitsConfig struct {
	HeadingAtxSequenceMax int `yaml:"heading_atx_sequence_max"`
	HardBreakMin          int `yaml:"hard_break_min"`
	ThematicBreakMin      int `yaml:"thematic_break_min"`
	CodeFencedSequenceMin int `yaml:"code_fenced_sequence_min"`
	ListItemValueMax      int `yaml:"list_item_value_max"`
	TabSize               int `yaml:"tab_size"`
}

// Default returns the CommonMark defaults.
func Default() Config {
	constructs := tokenizer.DefaultConstructs()
	limits := tokenizer.DefaultLimits()
	return Config{
		Constructs: ConstructsConfig{
			HeadingAtx:        constructs.HeadingAtx,
			ThematicBreak:     constructs.ThematicBreak,
			BlockQuote:        constructs.BlockQuote,
			ListItem:          constructs.ListItem,
			CodeFenced:        constructs.CodeFenced,
			CodeIndented:      constructs.CodeIndented,
			Definition:        constructs.Definition,
			HardBreakTrailing: constructs.HardBreakTrailing,
		},
		Limits: LimitsConfig{
			HeadingAtxSequenceMax: limits.HeadingAtxSequenceMax,
			HardBreakMin:          limits.HardBreakMin,
			ThematicBreakMin:      limits.ThematicBreakMin,
			CodeFencedSequenceMin: limits.CodeFencedSequenceMin,
			ListItemValueMax:      limits.ListItemValueMax,
			TabSize:               limits.TabSize,
		},
	}
}

// Options converts the configuration into parser options.
func (c Config) Options() parser.Options {
	return parser.Options{
		Constructs: tokenizer.Constructs{
			HeadingAtx:        c.Constructs.HeadingAtx,
			ThematicBreak:     c.Constructs.ThematicBreak,
			BlockQuote:        c.Constructs.BlockQuote,
			ListItem:          c.Constructs.ListItem,
			CodeFenced:        c.Constructs.CodeFenced,
			CodeIndented:      c.Constructs.CodeIndented,
			Definition:        c.Constructs.Definition,
			HardBreakTrailing: c.Constructs.HardBreakTrailing,
		},
		Limits: tokenizer.Limits{
			HeadingAtxSequenceMax: c.Limits.HeadingAtxSequenceMax,
			HardBreakMin:          c.Limits.HardBreakMin,
			ThematicBreakMin:      c.Limits.ThematicBreakMin,
			CodeFencedSequenceMin: c.Limits.CodeFencedSequenceMin,
			ListItemValueMax:      c.Limits.ListItemValueMax,
			TabSize:               c.Limits.TabSize,
		},
	}
}
