package docfold

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/epub"
	"github.com/docfold/docfold/internal/fileutil"
	"github.com/docfold/docfold/internal/markdown"
)

// minChapterContent is the smallest body size worth a chapter. Shorter
// files are skipped with a warning rather than producing empty sections.
const minChapterContent = 10

// BookOptions control EPUB book generation.
type BookOptions struct {
	// Title of the book. Empty means a title derived from the input name.
	Title string
	// Author of the book. Empty means DefaultVolumeAuthor.
	Author string
	// Description appears in the book metadata.
	Description string
	// Language is the ISO language code. Empty means "en".
	Language string
}

// BookResult reports what a book build produced.
type BookResult struct {
	OutputPath string
	// Chapters is the number of sections in the book.
	Chapters int
	// ChapterTitles lists the section titles in book order.
	ChapterTitles []string
	// Skipped lists source files excluded for having no usable content.
	Skipped []string
}

// BookBuilder converts Markdown files into EPUB books styled for
// e-readers.
type BookBuilder struct {
	loader   assets.AssetLoader
	renderer *markdown.Renderer
}

// NewBookBuilder creates a BookBuilder using the given asset loader.
func NewBookBuilder(loader assets.AssetLoader) *BookBuilder {
	return &BookBuilder{
		loader:   loader,
		renderer: markdown.NewRenderer(),
	}
}

// Build converts input (a Markdown file or a directory of Markdown files,
// one chapter per file in sorted order) into an EPUB at output. An empty
// output picks a path next to the input.
func (b *BookBuilder) Build(ctx context.Context, input, output string, opts BookOptions) (*BookResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == "" {
		return nil, fmt.Errorf("%w: no input path", ErrEmptyInput)
	}

	var files []string
	var defaultTitle, defaultOutput string
	switch {
	case fileutil.DirExists(input):
		globbed, err := fileutil.GlobMarkdown(input)
		if err != nil {
			return nil, err
		}
		if len(globbed) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMarkdownFiles, input)
		}
		files = globbed
		defaultTitle = fileutil.TitleFromStem(filepath.Base(input))
		defaultOutput = filepath.Join(input, fileutil.SanitizeFilename(filepath.Base(input))+".epub")
	case fileutil.FileExists(input):
		files = []string{input}
		defaultTitle = fileutil.TitleFromStem(fileutil.Stem(input))
		defaultOutput = strings.TrimSuffix(input, filepath.Ext(input)) + ".epub"
	default:
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	result := &BookResult{}
	var chapters []epub.Chapter
	for _, f := range files {
		doc, err := markdown.LoadDocument(f)
		if err != nil {
			return nil, err
		}
		if len(strings.TrimSpace(doc.Body)) < minChapterContent {
			result.Skipped = append(result.Skipped, filepath.Base(f))
			continue
		}
		fragment, err := b.renderer.Render(ctx, doc.Body)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f, err)
		}
		chapters = append(chapters, epub.Chapter{Title: doc.Title, Body: fragment})
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, input)
	}

	if output == "" {
		output = defaultOutput
	}
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	author := opts.Author
	if author == "" {
		author = DefaultVolumeAuthor
	}

	css, err := b.loader.LoadStyle(assets.KindleStyleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleResolve, err)
	}

	builder := epub.NewBuilder(epub.Metadata{
		Title:       title,
		Author:      author,
		Description: opts.Description,
		Language:    opts.Language,
	}, css)
	if err := builder.Build(ctx, chapters, output); err != nil {
		return nil, err
	}

	result.OutputPath = output
	result.Chapters = len(chapters)
	for _, ch := range chapters {
		result.ChapterTitles = append(result.ChapterTitles, ch.Title)
	}
	return result, nil
}
