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
	"github.com/docfold/docfold/internal/markdown"
)

// DefaultDiagramTitle is used when a source file has no H1 heading.
const DefaultDiagramTitle = "Mermaid Diagram"

// mermaidFence matches a fenced mermaid block. CRLF sources are
// normalized before matching, so one LF pattern suffices.
var mermaidFence = regexp.MustCompile("(?s)```mermaid\n(.*?)\n```")

// MermaidResult reports what a Mermaid conversion produced.
type MermaidResult struct {
	OutputDir string
	// Pages is the number of diagram pages written.
	Pages int
	// PagePaths lists the written diagram pages.
	PagePaths []string
	// Diagrams is the total number of diagrams across all pages.
	Diagrams int
	// IndexPath is the generated index page.
	IndexPath string
	// Skipped lists source files containing no mermaid blocks.
	Skipped []string
}

// MermaidConverter extracts mermaid code fences from Markdown files and
// renders them as interactive HTML pages backed by Mermaid.js.
type MermaidConverter struct {
	loader assets.AssetLoader
	now    func() time.Time
}

// NewMermaidConverter creates a MermaidConverter using the given asset
// loader.
func NewMermaidConverter(loader assets.AssetLoader) *MermaidConverter {
	return &MermaidConverter{loader: loader, now: time.Now}
}

// Convert renders the mermaid blocks of every Markdown file in inputDir
// as HTML pages in outputDir, plus an index page. Files without mermaid
// blocks are skipped.
func (c *MermaidConverter) Convert(ctx context.Context, inputDir, outputDir string) (*MermaidResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inputDir == "" || outputDir == "" {
		return nil, fmt.Errorf("%w: input and output directories required", ErrEmptyInput)
	}
	if !fileutil.DirExists(inputDir) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputDir)
	}

	files, err := fileutil.GlobMarkdown(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMarkdownFiles, inputDir)
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	style, err := resolveStyle(c.loader, "", assets.AcademicStyleName)
	if err != nil {
		return nil, err
	}

	result := &MermaidResult{OutputDir: outputDir}
	var cards []diagramCard
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(f) // #nosec G304 -- globbed from user-provided dir
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		content := strings.ReplaceAll(string(raw), "\r\n", "\n")

		blocks := extractMermaidBlocks(content)
		if len(blocks) == 0 {
			result.Skipped = append(result.Skipped, filepath.Base(f))
			continue
		}

		title := markdown.FirstHeading(content)
		if title == "" {
			title = DefaultDiagramTitle
		}

		sections := make([]diagramSection, 0, len(blocks))
		for i, code := range blocks {
			sections = append(sections, diagramSection{
				Number: i + 1,
				ID:     fmt.Sprintf("diagram-%d", i+1),
				Code:   code,
			})
		}

		source := filepath.Base(f)
		page, err := renderTemplate(c.loader, "diagram", diagramData{
			Title:     title,
			Source:    source,
			Style:     template.CSS(style),
			Diagrams:  sections,
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
		result.Pages++
		result.PagePaths = append(result.PagePaths, path)
		result.Diagrams += len(blocks)
		cards = append(cards, diagramCard{
			Title:  title,
			File:   name,
			Source: source,
			Count:  len(blocks),
		})
	}
	if result.Pages == 0 {
		return nil, fmt.Errorf("%w: no mermaid blocks in %s", ErrNoInputFiles, inputDir)
	}

	index, err := renderTemplate(c.loader, "diagram_index", diagramIndexData{
		Title:     "Mermaid Diagrams",
		Style:     template.CSS(style),
		Pages:     cards,
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

// extractMermaidBlocks returns the code inside every ```mermaid fence.
func extractMermaidBlocks(content string) []string {
	matches := mermaidFence.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		if code := strings.TrimRight(m[1], "\n"); strings.TrimSpace(code) != "" {
			blocks = append(blocks, code)
		}
	}
	return blocks
}
