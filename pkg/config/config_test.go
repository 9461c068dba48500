package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdtoken/pkg/config"
	"github.com/yaklabco/mdtoken/pkg/parser"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if !cfg.Constructs.HeadingAtx || !cfg.Constructs.CodeFenced {
		t.Error("expected all constructs enabled by default")
	}
	if cfg.Limits.TabSize != 4 {
		t.Errorf("expected tab size 4, got %d", cfg.Limits.TabSize)
	}
	if cfg.Limits.HeadingAtxSequenceMax != 6 {
		t.Errorf("expected heading sequence max 6, got %d", cfg.Limits.HeadingAtxSequenceMax)
	}
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	opts := config.Default().Options()
	if opts.Constructs != tokenizer.DefaultConstructs() {
		t.Error("default config must map to default constructs")
	}
	if opts.Limits != tokenizer.DefaultLimits() {
		t.Error("default config must map to default limits")
	}
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg config.Config)
		wantErr bool
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg config.Config) {
				if cfg != config.Default() {
					t.Error("expected defaults")
				}
			},
		},
		{
			name: "disable one construct",
			yaml: "constructs:\n  code_fenced: false\n",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Constructs.CodeFenced {
					t.Error("expected code_fenced disabled")
				}
				if !cfg.Constructs.HeadingAtx {
					t.Error("expected other constructs untouched")
				}
			},
		},
		{
			name: "override a limit",
			yaml: "limits:\n  tab_size: 8\n",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Limits.TabSize != 8 {
					t.Errorf("expected tab size 8, got %d", cfg.Limits.TabSize)
				}
				if cfg.Limits.HardBreakMin != 2 {
					t.Error("expected other limits untouched")
				}
			},
		},
		{
			name:    "unknown key",
			yaml:    "rules:\n  something: true\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "constructs: [",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.FromYAML([]byte(testCase.yaml))
			if testCase.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testCase.check(t, cfg)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.Default()
	original.Constructs.ListItem = false
	original.Limits.CodeFencedSequenceMin = 4

	data, err := original.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}

	parsed, err := config.FromYAML(data)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if parsed != original {
		t.Errorf("round trip changed the config: %+v != %+v", parsed, original)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mdtoken.yml")
	if err := os.WriteFile(path, []byte("constructs:\n  thematic_break: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Constructs.ThematicBreak {
		t.Error("expected thematic_break disabled")
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestConfigDrivesParser(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("constructs:\n  heading_atx: false\n"))
	if err != nil {
		t.Fatal(err)
	}

	p := parser.NewWithOptions(cfg.Options())
	snapshot, err := p.Parse(t.Context(), "doc.md", []byte("# plain"))
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range snapshot.Events {
		if e.Token.String() == "HeadingAtx" {
			t.Error("heading construct should be disabled")
		}
	}
}
