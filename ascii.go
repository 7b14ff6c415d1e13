package docfold

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/fileutil"
)

// DefaultFigureTitle is used when no title can be derived from the art.
const DefaultFigureTitle = "ASCII Diagram"

// previewLines is how many lines of art the index page shows per figure.
const previewLines = 8

// titleScanLines is how many leading lines are scanned for a figure label.
const titleScanLines = 10

// figureLabel matches an explicit figure caption line.
var figureLabel = regexp.MustCompile(`(?i)^FIGURE\s+\d+:`)

// capsLine matches a line that is entirely upper-case words, the other
// common way diagrams carry their title.
var capsLine = regexp.MustCompile(`^[A-Z][A-Z\s]+[A-Z]$`)

// boxDrawingChars are the characters that mark a line as diagram art
// rather than caption text.
const boxDrawingChars = "┌┐└┘│─┬┴├┤┼"

// AsciiResult reports what an ASCII conversion produced.
type AsciiResult struct {
	OutputDir string
	// Figures is the number of figure pages written.
	Figures int
	// FigurePaths lists the written figure pages.
	FigurePaths []string
	// IndexPath is the generated index page.
	IndexPath string
	// Skipped lists source files with no content.
	Skipped []string
}

// AsciiConverter turns ASCII-art text files into styled HTML figure pages
// with an index.
type AsciiConverter struct {
	loader assets.AssetLoader
	now    func() time.Time
}

// NewAsciiConverter creates an AsciiConverter using the given asset loader.
func NewAsciiConverter(loader assets.AssetLoader) *AsciiConverter {
	return &AsciiConverter{loader: loader, now: time.Now}
}

// Convert renders every .txt and .md file in inputDir as an HTML figure
// page in outputDir, plus an index page listing them all.
func (c *AsciiConverter) Convert(ctx context.Context, inputDir, outputDir string) (*AsciiResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inputDir == "" || outputDir == "" {
		return nil, fmt.Errorf("%w: input and output directories required", ErrEmptyInput)
	}
	if !fileutil.DirExists(inputDir) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputDir)
	}

	files, err := fileutil.GlobWithExtensions(inputDir, ".txt", ".md")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, inputDir)
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	style, err := resolveStyle(c.loader, "", assets.AcademicStyleName)
	if err != nil {
		return nil, err
	}

	result := &AsciiResult{OutputDir: outputDir}
	var cards []figureCard
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(f) // #nosec G304 -- globbed from user-provided dir
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		art := cleanAsciiArt(string(raw))
		if art == "" {
			result.Skipped = append(result.Skipped, filepath.Base(f))
			continue
		}

		title := figureTitle(art)
		source := filepath.Base(f)
		page, err := renderTemplate(c.loader, "figure", figureData{
			Title:     title,
			Subtitle:  source,
			Source:    source,
			Caption:   fmt.Sprintf("Generated from %s", source),
			Content:   art,
			Style:     template.CSS(style),
			Generated: stamp(c.now),
		})
		if err != nil {
			return nil, err
		}

		name := fileutil.SanitizeFilename(fileutil.Stem(f)) + ".html"
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(page), fileutil.FilePermissions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
		}
		result.Figures++
		result.FigurePaths = append(result.FigurePaths, path)
		cards = append(cards, figureCard{
			Title:   title,
			Source:  source,
			File:    name,
			Preview: artPreview(art),
		})
	}

	index, err := renderTemplate(c.loader, "figure_index", figureIndexData{
		Title:     "ASCII Figures",
		Style:     template.CSS(style),
		Figures:   cards,
		Generated: stamp(c.now),
	})
	if err != nil {
		return nil, err
	}
	result.IndexPath = filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(result.IndexPath, []byte(index), fileutil.FilePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return result, nil
}

// cleanAsciiArt drops code-fence markers and leading/trailing blank lines.
func cleanAsciiArt(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}

	start := 0
	for start < len(kept) && strings.TrimSpace(kept[start]) == "" {
		start++
	}
	end := len(kept)
	for end > start && strings.TrimSpace(kept[end-1]) == "" {
		end--
	}
	return strings.Join(kept[start:end], "\n")
}

// figureTitle derives a title from the art. An explicit "FIGURE n:" label
// wins, pulling in the following line when that line is caption text
// rather than box drawing. Failing that, a long all-caps line is taken as
// the title. Everything else falls back to DefaultFigureTitle.
func figureTitle(art string) string {
	lines := strings.Split(art, "\n")
	limit := len(lines)
	if limit > titleScanLines {
		limit = titleScanLines
	}

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if !figureLabel.MatchString(line) {
			continue
		}
		title := line
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && !strings.ContainsAny(next, boxDrawingChars) {
				title += " - " + next
			}
		}
		return title
	}

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) > 10 && capsLine.MatchString(line) {
			return line
		}
	}
	return DefaultFigureTitle
}

// artPreview returns the first few lines of the art for index cards.
func artPreview(art string) string {
	lines := strings.Split(art, "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	return strings.Join(lines, "\n")
}
