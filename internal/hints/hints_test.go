package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		wantPart string
	}{
		{
			name:     "no user config path",
			paths:    []string{"config.yaml", "config.yml"},
			wantPart: "--config /path/to/file.yaml",
		},
		{
			name:     "suggests user config path",
			paths:    []string{"config.yaml", "/home/u/.config/docfold/config.yaml"},
			wantPart: "create /home/u/.config/docfold/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForConfigNotFound(tt.paths)
			if !strings.Contains(got, tt.wantPart) {
				t.Errorf("ForConfigNotFound() = %q, missing %q", got, tt.wantPart)
			}
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("ForConfigNotFound() = %q, want hint prefix", got)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleNotFound([]string{"document", "academic", "kindle"})
	if !strings.Contains(got, "document, academic, kindle") {
		t.Errorf("ForStyleNotFound() = %q, want style list", got)
	}
}

func TestHintFormatting(t *testing.T) {
	for name, got := range map[string]string{
		"ForOutputDirectory": ForOutputDirectory(),
		"ForConfluenceAuth":  ForConfluenceAuth(),
		"ForConfluenceURL":   ForConfluenceURL(),
		"ForNetwork":         ForNetwork(),
	} {
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("%s = %q, want hint prefix", name, got)
		}
	}
}

func TestForNoMarkdownFiles(t *testing.T) {
	got := ForNoMarkdownFiles("./docs")
	if !strings.Contains(got, "./docs") {
		t.Errorf("ForNoMarkdownFiles() = %q, want directory mentioned", got)
	}
}
