package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jywlabs/promptbuilder/internal/template"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, template.Dir)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, template.ConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no config file
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "missing file uses defaults",
			check: func(t *testing.T, cfg *Config) {
				want := Default()
				if *cfg != want {
					t.Errorf("Load() = %+v, want defaults %+v", *cfg, want)
				}
			},
		},
		{
			name:    "default template parses to defaults",
			content: template.DefaultConfig,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Export.FileName != "ai-prompt.txt" {
					t.Errorf("Export.FileName = %q, want ai-prompt.txt", cfg.Export.FileName)
				}
				if cfg.Clipboard.Method != ClipboardAuto {
					t.Errorf("Clipboard.Method = %q, want auto", cfg.Clipboard.Method)
				}
			},
		},
		{
			name: "partial config keeps other defaults",
			content: `serve:
  addr: ":9090"
clipboard:
  method: OSC52
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Serve.Addr != ":9090" {
					t.Errorf("Serve.Addr = %q, want :9090", cfg.Serve.Addr)
				}
				if cfg.Clipboard.Method != ClipboardOSC52 {
					t.Errorf("Clipboard.Method = %q, want osc52", cfg.Clipboard.Method)
				}
				if cfg.Log.MaxBackups != Default().Log.MaxBackups {
					t.Errorf("Log.MaxBackups = %d, want default", cfg.Log.MaxBackups)
				}
			},
		},
		{
			name: "explicit empty export dir is kept",
			content: `export:
  dir: ""
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Export.Dir != "" {
					t.Errorf("Export.Dir = %q, want empty", cfg.Export.Dir)
				}
			},
		},
		{
			name: "empty file name rejected",
			content: `export:
  fileName: ""
`,
			wantErr: "export.fileName",
		},
		{
			name: "file name with path rejected",
			content: `export:
  fileName: "../x.txt"
`,
			wantErr: "bare file name",
		},
		{
			name: "unknown clipboard method rejected",
			content: `clipboard:
  method: telepathy
`,
			wantErr: "clipboard.method",
		},
		{
			name:    "invalid yaml",
			content: "serve: [",
			wantErr: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != "" {
				writeConfig(t, dir, tt.content)
			}

			cfg, err := Load(dir)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Load() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "serve:\n  addr: \":9090\"\n")

	t.Setenv("PROMPTBUILDER_ADDR", ":7070")
	t.Setenv("PROMPTBUILDER_CLIPBOARD", "NONE")
	t.Setenv("PROMPTBUILDER_LOG_MAX_SIZE", "42")
	t.Setenv("PROMPTBUILDER_LOG_COMPRESS", "true")
	t.Setenv("PROMPTBUILDER_LOG_MAX_AGE", "not-a-number")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Serve.Addr != ":7070" {
		t.Errorf("Serve.Addr = %q, want env override :7070", cfg.Serve.Addr)
	}
	if cfg.Clipboard.Method != ClipboardNone {
		t.Errorf("Clipboard.Method = %q, want none", cfg.Clipboard.Method)
	}
	if cfg.Log.MaxSizeMB != 42 {
		t.Errorf("Log.MaxSizeMB = %d, want 42", cfg.Log.MaxSizeMB)
	}
	if !cfg.Log.Compress {
		t.Error("Log.Compress = false, want true")
	}
	if cfg.Log.MaxAgeDays != Default().Log.MaxAgeDays {
		t.Errorf("Log.MaxAgeDays = %d, want default on bad value", cfg.Log.MaxAgeDays)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PROMPTBUILDER_EXPORT_DIR=exports\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv("PROMPTBUILDER_EXPORT_DIR", "")
	os.Unsetenv("PROMPTBUILDER_EXPORT_DIR")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Export.Dir != "exports" {
		t.Errorf("Export.Dir = %q, want exports from .env", cfg.Export.Dir)
	}
}
