package docfold

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docfold/docfold/internal/assets"
)

func TestCleanAsciiArt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "strips code fences",
			content: "```\n+---+\n| A |\n+---+\n```\n",
			want:    "+---+\n| A |\n+---+",
		},
		{
			name:    "strips fences with language",
			content: "```text\nart\n```\n",
			want:    "art",
		},
		{
			name:    "trims blank lines",
			content: "\n\n  \nart line\n\n\n",
			want:    "art line",
		},
		{
			name:    "keeps interior blanks",
			content: "top\n\nbottom\n",
			want:    "top\n\nbottom",
		},
		{
			name:    "normalizes crlf",
			content: "a\r\nb\r\n",
			want:    "a\nb",
		},
		{
			name:    "empty input",
			content: "\n\n",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanAsciiArt(tt.content); got != tt.want {
				t.Errorf("cleanAsciiArt(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestFigureTitle(t *testing.T) {
	tests := []struct {
		name string
		art  string
		want string
	}{
		{
			name: "figure label",
			art:  "FIGURE 1: System Overview\n┌───┐\n│ A │\n└───┘",
			want: "FIGURE 1: System Overview",
		},
		{
			name: "figure label case insensitive",
			art:  "Figure 2: Data Flow\n┌───┐",
			want: "Figure 2: Data Flow",
		},
		{
			name: "figure label pulls in caption line",
			art:  "FIGURE 3: Lifecycle\nRequest path from client to store\n┌───┐",
			want: "FIGURE 3: Lifecycle - Request path from client to store",
		},
		{
			name: "figure label skips box art line",
			art:  "FIGURE 4: Topology\n┌──────┐",
			want: "FIGURE 4: Topology",
		},
		{
			name: "all caps line",
			art:  "+---+\nSYSTEM ARCHITECTURE\n+---+",
			want: "SYSTEM ARCHITECTURE",
		},
		{
			name: "short caps line ignored",
			art:  "ABC DEF\n+---+",
			want: DefaultFigureTitle,
		},
		{
			name: "no title",
			art:  "+---+\n| A |\n+---+",
			want: DefaultFigureTitle,
		},
		{
			name: "label outside scan window ignored",
			art:  strings.Repeat("line\n", 11) + "FIGURE 9: Late",
			want: DefaultFigureTitle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := figureTitle(tt.art); got != tt.want {
				t.Errorf("figureTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsciiConvert(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "figures")
	writeFile(t, in, "arch.txt", "FIGURE 1: Architecture\n┌───┐\n│ A │──▶ B\n└───┘\n")
	writeFile(t, in, "flow.md", "```\nSYSTEM DATA FLOW\n+---+\n| X |\n+---+\n```\n")
	writeFile(t, in, "empty.txt", "\n\n")
	writeFile(t, in, "ignored.html", "<p>not art</p>")

	c := NewAsciiConverter(assets.NewEmbeddedLoader())
	result, err := c.Convert(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if result.Figures != 2 {
		t.Errorf("Figures = %d, want 2", result.Figures)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "empty.txt" {
		t.Errorf("Skipped = %v, want [empty.txt]", result.Skipped)
	}

	page := readFile(t, filepath.Join(out, "arch.html"))
	if !strings.Contains(page, "FIGURE 1: Architecture") {
		t.Error("figure page missing title")
	}
	// Art is escaped into the page, not interpreted as markup.
	if !strings.Contains(page, "──▶ B") {
		t.Error("figure page missing art")
	}

	index := readFile(t, result.IndexPath)
	if !strings.Contains(index, `href="arch.html"`) || !strings.Contains(index, `href="flow.html"`) {
		t.Error("index missing figure links")
	}
	if !strings.Contains(index, "SYSTEM DATA FLOW") {
		t.Error("index missing preview content")
	}
}

func TestAsciiConvertPreviewTruncated(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "figures")

	var lines []string
	for i := 1; i <= 12; i++ {
		lines = append(lines, strings.Repeat("=", i))
	}
	writeFile(t, in, "tall.txt", strings.Join(lines, "\n"))

	c := NewAsciiConverter(assets.NewEmbeddedLoader())
	result, err := c.Convert(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	index := readFile(t, result.IndexPath)
	if !strings.Contains(index, strings.Repeat("=", 8)) {
		t.Error("preview missing eighth line")
	}
	if strings.Contains(index, strings.Repeat("=", 9)) {
		t.Error("preview should stop after eight lines")
	}
}

func TestAsciiConvertNoFiles(t *testing.T) {
	c := NewAsciiConverter(assets.NewEmbeddedLoader())
	_, err := c.Convert(context.Background(), t.TempDir(), t.TempDir())
	if !errors.Is(err, ErrNoInputFiles) {
		t.Errorf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestAsciiConvertMissingInput(t *testing.T) {
	c := NewAsciiConverter(assets.NewEmbeddedLoader())
	_, err := c.Convert(context.Background(), "/no/such/dir", t.TempDir())
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}
