package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output:
  defaultDir: ./out
style:
  name: academic
toc:
  enabled: true
  maxDepth: 2
volume:
  title: Complete Guide
  author: Jane Doe
book:
  author: Jane Doe
  language: en
confluence:
  token: abc123
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.DefaultDir != "./out" {
		t.Errorf("Output.DefaultDir = %q, want ./out", cfg.Output.DefaultDir)
	}
	if cfg.Style.Name != "academic" {
		t.Errorf("Style.Name = %q, want academic", cfg.Style.Name)
	}
	if !cfg.TOC.Enabled || cfg.TOC.MaxDepth != 2 {
		t.Errorf("TOC = %+v, want enabled with maxDepth 2", cfg.TOC)
	}
	if cfg.Volume.Title != "Complete Guide" {
		t.Errorf("Volume.Title = %q", cfg.Volume.Title)
	}
	if cfg.Confluence.Token != "abc123" {
		t.Errorf("Confluence.Token = %q", cfg.Confluence.Token)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, "bogus: value\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name: "volume title too long",
			mutate: func(c *Config) {
				c.Volume.Title = strings.Repeat("x", MaxTitleLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "book author too long",
			mutate: func(c *Config) {
				c.Book.Author = strings.Repeat("x", MaxAuthorLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "confluence token too long",
			mutate: func(c *Config) {
				c.Confluence.Token = strings.Repeat("x", MaxTokenLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateTOCMaxDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TOC.MaxDepth = 9

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for maxDepth 9, got nil")
	}

	cfg.TOC.MaxDepth = 3
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.TOC.Enabled {
		t.Error("DefaultConfig() TOC should be enabled")
	}
	if cfg.TOC.MaxDepth != 0 {
		t.Errorf("DefaultConfig() TOC.MaxDepth = %d, want 0 (command default)", cfg.TOC.MaxDepth)
	}
}
