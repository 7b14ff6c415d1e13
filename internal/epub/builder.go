// Package epub assembles rendered chapters into an EPUB book.
package epub

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goepub "github.com/go-shiori/go-epub"
	"github.com/google/uuid"

	"github.com/docfold/docfold/internal/fileutil"
	"github.com/docfold/docfold/internal/markdown"
)

// Sentinel errors for EPUB assembly.
var (
	// ErrNoChapters indicates there is nothing to put in the book.
	ErrNoChapters = errors.New("no chapters to build")

	// ErrBuild indicates EPUB assembly failed.
	ErrBuild = errors.New("failed to build epub")

	// ErrWrite indicates the EPUB file could not be written.
	ErrWrite = errors.New("failed to write epub")
)

// internalCSSName is the stylesheet path inside the EPUB container.
const internalCSSName = "styles.css"

// Metadata describes the book being assembled.
type Metadata struct {
	Title       string
	Author      string
	Description string
	Language    string
	Identifier  string
}

// Chapter is one rendered section of the book. Body is an HTML fragment.
type Chapter struct {
	Title string
	Body  string
}

// Builder assembles chapters into an EPUB file with a shared stylesheet.
type Builder struct {
	meta Metadata
	css  string
}

// NewBuilder creates a Builder. css is the stylesheet content linked from
// every chapter; empty css produces unstyled chapters.
func NewBuilder(meta Metadata, css string) *Builder {
	return &Builder{meta: meta, css: css}
}

// Build assembles the chapters and writes the book to outputPath.
// Returns ErrNoChapters if chapters is empty.
func (b *Builder) Build(ctx context.Context, chapters []Chapter, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(chapters) == 0 {
		return ErrNoChapters
	}

	book, err := goepub.NewEpub(b.meta.Title)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuild, err)
	}

	if b.meta.Author != "" {
		book.SetAuthor(b.meta.Author)
	}
	if b.meta.Description != "" {
		book.SetDescription(b.meta.Description)
	}
	lang := b.meta.Language
	if lang == "" {
		lang = "en"
	}
	book.SetLang(lang)

	identifier := b.meta.Identifier
	if identifier == "" {
		identifier = "urn:uuid:" + uuid.NewString()
	}
	book.SetIdentifier(identifier)

	// The library reads source files when the book is written, so the
	// materialized stylesheet must outlive the Write call below.
	cssPath, cleanup, err := b.addStylesheet(book)
	if err != nil {
		return err
	}
	defer cleanup()

	for i, ch := range chapters {
		if err := ctx.Err(); err != nil {
			return err
		}

		filename := fmt.Sprintf("chapter-%02d-%s.xhtml", i+1, markdown.Anchor(ch.Title))
		if _, err := book.AddSection(ch.Body, ch.Title, filename, cssPath); err != nil {
			return fmt.Errorf("%w: adding chapter %q: %v", ErrBuild, ch.Title, err)
		}
	}

	if err := book.Write(outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// addStylesheet materializes the CSS to a temp file so the epub library can
// ingest it, and returns the internal path to link from chapters along with
// a cleanup function for the temp file.
func (b *Builder) addStylesheet(book *goepub.Epub) (string, func(), error) {
	if b.css == "" {
		return "", func() {}, nil
	}

	tmpDir, err := os.MkdirTemp("", "docfold-epub-*")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	tmpCSS := filepath.Join(tmpDir, internalCSSName)
	if err := os.WriteFile(tmpCSS, []byte(b.css), fileutil.FilePermissions); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}

	cssPath, err := book.AddCSS(tmpCSS, internalCSSName)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: adding stylesheet: %v", ErrBuild, err)
	}
	return cssPath, cleanup, nil
}
