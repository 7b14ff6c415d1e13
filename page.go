package docfold

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/fileutil"
	"github.com/docfold/docfold/internal/markdown"
)

// defaultTOCDepth is the deepest heading level a page TOC includes when
// the caller does not set one.
const defaultTOCDepth = 5

// PageOptions control HTML page generation.
type PageOptions struct {
	// Title overrides the resolved document title.
	Title string
	// Style is a theme name, a CSS file path, or raw CSS. Empty means the
	// default theme.
	Style string
	// TOC inserts a table of contents before the content.
	TOC bool
	// TOCMaxDepth is the deepest heading level included in the TOC.
	// Zero means defaultTOCDepth.
	TOCMaxDepth int
	// Separate writes one HTML page per source file plus an index page
	// instead of a single combined page. Only meaningful for directories.
	Separate bool
}

// PageResult reports what a Generate call produced.
type PageResult struct {
	// OutputPath is the combined page, or the output directory in
	// separate mode.
	OutputPath string
	// Pages lists every HTML file written.
	Pages []string
	// Documents is the number of source files converted.
	Documents int
}

// PageGenerator turns Markdown files into styled standalone HTML pages.
type PageGenerator struct {
	loader   assets.AssetLoader
	renderer *markdown.Renderer
	now      func() time.Time
}

// NewPageGenerator creates a PageGenerator using the given asset loader.
func NewPageGenerator(loader assets.AssetLoader) *PageGenerator {
	return &PageGenerator{
		loader:   loader,
		renderer: markdown.NewRenderer(),
		now:      time.Now,
	}
}

// Generate converts input (a Markdown file or a directory of Markdown
// files) into HTML at output. An empty output picks a path next to the
// input. Directories produce a single combined page unless opts.Separate
// is set, in which case each file gets its own page plus an index.
func (g *PageGenerator) Generate(ctx context.Context, input, output string, opts PageOptions) (*PageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == "" {
		return nil, fmt.Errorf("%w: no input path", ErrEmptyInput)
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	style, err := resolveStyle(g.loader, opts.Style, assets.DefaultStyleName)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		if opts.Separate {
			return g.generateSeparate(ctx, input, output, style, opts)
		}
		return g.generateCombined(ctx, input, output, style, opts)
	}
	return g.generateSingle(ctx, input, output, style, opts)
}

func (g *PageGenerator) generateSingle(ctx context.Context, input, output, style string, opts PageOptions) (*PageResult, error) {
	doc, err := markdown.LoadDocument(input)
	if err != nil {
		return nil, err
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
	}

	title := opts.Title
	if title == "" {
		title = doc.Title
	}

	page, err := g.renderPage(ctx, doc.Body, title, style, opts)
	if err != nil {
		return nil, err
	}
	if err := g.writePage(output, page); err != nil {
		return nil, err
	}
	return &PageResult{OutputPath: output, Pages: []string{output}, Documents: 1}, nil
}

func (g *PageGenerator) generateCombined(ctx context.Context, dir, output, style string, opts PageOptions) (*PageResult, error) {
	docs, err := g.loadDirectory(dir)
	if err != nil {
		return nil, err
	}
	if output == "" {
		output = filepath.Join(dir, fileutil.SanitizeFilename(filepath.Base(dir))+".html")
	}

	title := opts.Title
	if title == "" {
		title = fileutil.TitleFromStem(filepath.Base(dir))
	}

	// Render each document separately so heading IDs can be scoped per
	// document, keeping TOC anchors unique across sources.
	var sections []string
	for i, doc := range docs {
		fragment, err := g.renderer.Render(ctx, doc.Body)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", doc.Path, err)
		}
		sections = append(sections, markdown.ScopeAnchors(fragment, fmt.Sprintf("doc-%d", i+1)))
	}
	content := strings.Join(sections, "\n<div class=\"page-break\"></div>\n")

	page, err := g.composePage(content, title, style, opts)
	if err != nil {
		return nil, err
	}
	if err := g.writePage(output, page); err != nil {
		return nil, err
	}
	return &PageResult{OutputPath: output, Pages: []string{output}, Documents: len(docs)}, nil
}

func (g *PageGenerator) generateSeparate(ctx context.Context, dir, output, style string, opts PageOptions) (*PageResult, error) {
	docs, err := g.loadDirectory(dir)
	if err != nil {
		return nil, err
	}
	if output == "" {
		output = filepath.Join(dir, "html")
	}
	if err := fileutil.EnsureDir(output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	result := &PageResult{OutputPath: output, Documents: len(docs)}
	var cards []documentCard
	for _, doc := range docs {
		page, err := g.renderPage(ctx, doc.Body, doc.Title, style, opts)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", doc.Path, err)
		}
		name := fileutil.SanitizeFilename(fileutil.Stem(doc.Path)) + ".html"
		path := filepath.Join(output, name)
		if err := g.writePage(path, page); err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, path)
		cards = append(cards, documentCard{
			Title: doc.Title,
			File:  name,
			Name:  filepath.Base(doc.Path),
		})
	}

	indexTitle := opts.Title
	if indexTitle == "" {
		indexTitle = fileutil.TitleFromStem(filepath.Base(dir))
	}
	index, err := renderTemplate(g.loader, "doc_index", docIndexData{
		Title:     indexTitle,
		Style:     template.CSS(style),
		Documents: cards,
		Generated: stamp(g.now),
	})
	if err != nil {
		return nil, err
	}
	indexPath := filepath.Join(output, "index.html")
	if err := g.writePage(indexPath, index); err != nil {
		return nil, err
	}
	result.Pages = append(result.Pages, indexPath)
	return result, nil
}

// loadDirectory parses every Markdown file in dir, sorted by name.
func (g *PageGenerator) loadDirectory(dir string) ([]*markdown.Document, error) {
	files, err := fileutil.GlobMarkdown(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMarkdownFiles, dir)
	}
	docs := make([]*markdown.Document, 0, len(files))
	for _, f := range files {
		doc, err := markdown.LoadDocument(f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// renderPage converts one Markdown body into a full HTML page.
func (g *PageGenerator) renderPage(ctx context.Context, body, title, style string, opts PageOptions) (string, error) {
	content, err := g.renderer.Render(ctx, body)
	if err != nil {
		return "", err
	}
	return g.composePage(content, title, style, opts)
}

// composePage wraps an HTML fragment into the page template.
func (g *PageGenerator) composePage(content, title, style string, opts PageOptions) (string, error) {
	var toc string
	if opts.TOC {
		depth := opts.TOCMaxDepth
		if depth <= 0 {
			depth = defaultTOCDepth
		}
		headings := markdown.ExtractHeadings(content, 1, depth)
		toc = markdown.BuildTOC(headings)
	}
	return renderTemplate(g.loader, "page", pageData{
		Title:     title,
		Style:     template.CSS(style),
		TOC:       template.HTML(toc),
		Content:   template.HTML(content),
		Generated: stamp(g.now),
	})
}

func (g *PageGenerator) writePage(path, content string) error {
	if err := os.WriteFile(path, []byte(content), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
