package docfold

import (
	"bufio"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/epub"
	"github.com/docfold/docfold/internal/fileutil"
	"github.com/docfold/docfold/internal/markdown"
)

// DefaultVolumeAuthor is used when no author is configured.
const DefaultVolumeAuthor = "Generated Document"

// volumeTOCDepth is the deepest heading level a volume TOC includes.
const volumeTOCDepth = 3

// VolumeOptions control master volume assembly.
type VolumeOptions struct {
	// Title of the volume. Empty means the directory name.
	Title string
	// Author of the volume. Empty means DefaultVolumeAuthor.
	Author string
	// Style is a theme name, CSS file path, or raw CSS for the HTML
	// volume. Empty means the default theme.
	Style string
	// Prefix keeps only source files whose name starts with it.
	Prefix string
	// OrderFile is a text file listing chapter filenames, one per line.
	// Listed files come first in the given order; files it names that do
	// not exist are warned about; unlisted files follow, sorted.
	OrderFile string
	// HTML and EPUB select the outputs to produce. Both false means both.
	HTML bool
	EPUB bool
}

// VolumeResult reports what a volume build produced.
type VolumeResult struct {
	HTMLPath string
	EPUBPath string
	// Chapters is the number of chapters assembled.
	Chapters int
	// ChapterTitles lists the assembled chapter titles in volume order.
	ChapterTitles []string
	// Skipped lists source files excluded as drafts.
	Skipped []string
	// Warnings carries non-fatal problems such as order-file entries
	// that match no source file.
	Warnings []string
}

// VolumeBuilder assembles a directory of Markdown chapters into a single
// HTML master volume and/or an EPUB book.
type VolumeBuilder struct {
	loader   assets.AssetLoader
	renderer *markdown.Renderer
	now      func() time.Time
}

// NewVolumeBuilder creates a VolumeBuilder using the given asset loader.
func NewVolumeBuilder(loader assets.AssetLoader) *VolumeBuilder {
	return &VolumeBuilder{
		loader:   loader,
		renderer: markdown.NewRenderer(),
		now:      time.Now,
	}
}

// Build assembles the chapters in dir. outputBase is the output path
// without extension; empty means a path next to dir named after it.
func (b *VolumeBuilder) Build(ctx context.Context, dir, outputBase string, opts VolumeOptions) (*VolumeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, fmt.Errorf("%w: no chapter directory", ErrEmptyInput)
	}
	if !fileutil.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, dir)
	}

	result := &VolumeResult{}
	docs, err := b.collectChapters(dir, opts, result)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMarkdownFiles, dir)
	}

	title := opts.Title
	if title == "" {
		title = fileutil.TitleFromStem(filepath.Base(dir))
	}
	author := opts.Author
	if author == "" {
		author = DefaultVolumeAuthor
	}
	if outputBase == "" {
		outputBase = filepath.Join(dir, fileutil.SanitizeFilename(filepath.Base(dir)))
	}

	chapters, toc, err := b.renderChapters(ctx, docs)
	if err != nil {
		return nil, err
	}
	result.Chapters = len(chapters)
	for _, ch := range chapters {
		result.ChapterTitles = append(result.ChapterTitles, ch.Title)
	}

	wantHTML := opts.HTML || !opts.EPUB
	wantEPUB := opts.EPUB || !opts.HTML

	if wantHTML {
		path := outputBase + ".html"
		if err := b.writeHTML(path, title, author, toc, chapters, opts.Style); err != nil {
			return nil, err
		}
		result.HTMLPath = path
	}
	if wantEPUB {
		path := outputBase + ".epub"
		if err := b.writeEPUB(ctx, path, title, author, chapters); err != nil {
			return nil, err
		}
		result.EPUBPath = path
	}
	return result, nil
}

// collectChapters globs, filters, and orders the chapter documents.
func (b *VolumeBuilder) collectChapters(dir string, opts VolumeOptions, result *VolumeResult) ([]*markdown.Document, error) {
	files, err := fileutil.GlobMarkdown(dir)
	if err != nil {
		return nil, err
	}
	if opts.Prefix != "" {
		kept := files[:0]
		for _, f := range files {
			if strings.HasPrefix(filepath.Base(f), opts.Prefix) {
				kept = append(kept, f)
			}
		}
		files = kept
	}

	if opts.OrderFile != "" {
		ordered, warnings, err := applyOrderFile(files, opts.OrderFile)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, warnings...)
		files = ordered
	}

	docs := make([]*markdown.Document, 0, len(files))
	for _, f := range files {
		doc, err := markdown.LoadDocument(f)
		if err != nil {
			return nil, err
		}
		if doc.Meta.Draft {
			result.Skipped = append(result.Skipped, filepath.Base(f))
			continue
		}
		docs = append(docs, doc)
	}

	// Frontmatter weight reorders chapters when no explicit order file is
	// given: weighted chapters first by weight, the rest keep sort order.
	if opts.OrderFile == "" {
		sort.SliceStable(docs, func(i, j int) bool {
			wi, wj := docs[i].Meta.Weight, docs[j].Meta.Weight
			if wi != 0 && wj != 0 {
				return wi < wj
			}
			return wi != 0 && wj == 0
		})
	}
	return docs, nil
}

// applyOrderFile reorders files per the order file: listed names first in
// file order, unlisted files appended sorted. Names with no matching file
// produce warnings.
func applyOrderFile(files []string, orderFile string) ([]string, []string, error) {
	f, err := os.Open(orderFile) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOrderFile, err)
	}
	defer f.Close()

	byName := make(map[string]string, len(files))
	for _, p := range files {
		byName[filepath.Base(p)] = p
	}

	var ordered []string
	var warnings []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		path, ok := byName[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("order file names %q but no such chapter exists", name))
			continue
		}
		if !seen[path] {
			ordered = append(ordered, path)
			seen[path] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOrderFile, err)
	}

	var rest []string
	for _, p := range files {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...), warnings, nil
}

// renderChapters renders each document and builds the volume TOC. The
// leading H1 is stripped (the chapter title is rendered by the template)
// and remaining headings are demoted one level so chapter titles stay the
// only H1s. Heading IDs are prefixed with the chapter anchor to keep them
// unique across the volume.
func (b *VolumeBuilder) renderChapters(ctx context.Context, docs []*markdown.Document) ([]volumeChapter, string, error) {
	var chapters []volumeChapter
	var tocHeadings []markdown.Heading

	for i, doc := range docs {
		body := markdown.DemoteHeadings(markdown.StripLeadingTitle(doc.Body))
		fragment, err := b.renderer.Render(ctx, body)
		if err != nil {
			return nil, "", fmt.Errorf("rendering %s: %w", doc.Path, err)
		}

		anchor := fmt.Sprintf("chapter-%d", i+1)
		fragment = markdown.ScopeAnchors(fragment, anchor)

		tocHeadings = append(tocHeadings, markdown.Heading{Level: 1, ID: anchor, Text: doc.Title})
		tocHeadings = append(tocHeadings, markdown.ExtractHeadings(fragment, 2, volumeTOCDepth)...)

		chapters = append(chapters, volumeChapter{
			ID:    anchor,
			Title: doc.Title,
			Body:  template.HTML(fragment),
		})
	}
	return chapters, markdown.BuildTOC(tocHeadings), nil
}

func (b *VolumeBuilder) writeHTML(path, title, author, toc string, chapters []volumeChapter, styleInput string) error {
	style, err := resolveStyle(b.loader, styleInput, assets.DefaultStyleName)
	if err != nil {
		return err
	}
	page, err := renderTemplate(b.loader, "volume", volumeData{
		Title:     title,
		Author:    author,
		Style:     template.CSS(style),
		TOC:       template.HTML(toc),
		Chapters:  chapters,
		Generated: stamp(b.now),
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

func (b *VolumeBuilder) writeEPUB(ctx context.Context, path, title, author string, chapters []volumeChapter) error {
	css, err := b.loader.LoadStyle(assets.KindleStyleName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStyleResolve, err)
	}

	bookChapters := make([]epub.Chapter, 0, len(chapters))
	for _, ch := range chapters {
		bookChapters = append(bookChapters, epub.Chapter{Title: ch.Title, Body: string(ch.Body)})
	}

	builder := epub.NewBuilder(epub.Metadata{Title: title, Author: author}, css)
	return builder.Build(ctx, bookChapters, path)
}
