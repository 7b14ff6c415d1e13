package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean name unchanged",
			input:    "design-notes.md",
			expected: "design-notes.md",
		},
		{
			name:     "special characters stripped",
			input:    `Page: "Overview" <v2>?`,
			expected: "Page Overview v2",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  report  ",
			expected: "report",
		},
		{
			name:     "runs of whitespace collapsed",
			input:    "a   b\tc",
			expected: "a b c",
		},
		{
			name:     "nothing survives",
			input:    "<>/?:*|",
			expected: "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTitleFromStem(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hyphens become spaces",
			input:    "chapter-01-intro",
			expected: "Chapter 01 Intro",
		},
		{
			name:     "underscores become spaces",
			input:    "user_guide",
			expected: "User Guide",
		},
		{
			name:     "already titled",
			input:    "README",
			expected: "README",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFromStem(tt.input); got != tt.expected {
				t.Errorf("TitleFromStem(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"docs/intro.md", "intro"},
		{"intro.markdown", "intro"},
		{"no-extension", "no-extension"},
		{"a/b/c.tar.gz", "c.tar"},
	}

	for _, tt := range tests {
		if got := Stem(tt.input); got != tt.expected {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsMarkdownFile(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"a.md", true},
		{"a.markdown", true},
		{"a.MD", true},
		{"a.txt", false},
		{"a.html", false},
	}

	for _, tt := range tests {
		if got := IsMarkdownFile(tt.input); got != tt.expected {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestGlobMarkdown(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.md", "notes.txt", "c.markdown"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o750); err != nil {
		t.Fatal(err)
	}

	files, err := GlobMarkdown(dir)
	if err != nil {
		t.Fatalf("GlobMarkdown() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "c.markdown"),
	}
	if len(files) != len(want) {
		t.Fatalf("GlobMarkdown() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("GlobMarkdown()[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestGlobMarkdownMissingDir(t *testing.T) {
	if _, err := GlobMarkdown(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("GlobMarkdown(missing) expected error, got nil")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.md")
	if FileExists(path) {
		t.Error("FileExists() = true for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !DirExists(path) {
		t.Error("EnsureDir() did not create directory")
	}
	// Idempotent.
	if err := EnsureDir(path); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{512, "0.5 KB"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := HumanSize(tt.bytes); got != tt.expected {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.bytes, got, tt.expected)
		}
	}
}

func TestIsFilePath(t *testing.T) {
	if !IsFilePath("./style.css") || IsFilePath("document") {
		t.Error("IsFilePath misclassified input")
	}
}
