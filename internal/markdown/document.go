package markdown

import (
	"bytes"
	"fmt"
	"os"

	"github.com/adrg/frontmatter"

	"github.com/docfold/docfold/internal/fileutil"
)

// Meta is the optional YAML frontmatter a source file may carry.
// Weight orders chapters within a volume; Draft excludes a file entirely.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Weight int    `yaml:"weight"`
	Draft  bool   `yaml:"draft"`
}

// Document is a parsed Markdown source file: frontmatter split from body,
// body normalized, title resolved.
type Document struct {
	Path  string
	Meta  Meta
	Body  string
	Title string
}

// ParseDocument splits frontmatter from source and resolves the title.
// Title resolution order: frontmatter title, first H1, filename stem.
func ParseDocument(path string, source []byte) (*Document, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}

	doc := &Document{
		Path: path,
		Meta: meta,
		Body: Normalize(string(body)),
	}
	doc.Title = resolveTitle(doc)
	return doc, nil
}

// LoadDocument reads and parses a Markdown file.
func LoadDocument(path string) (*Document, error) {
	source, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDocument(path, source)
}

// resolveTitle picks the document title: frontmatter, first H1, then the
// filename stem with separators mapped to spaces and words title-cased.
func resolveTitle(doc *Document) string {
	if doc.Meta.Title != "" {
		return doc.Meta.Title
	}
	if h := FirstHeading(doc.Body); h != "" {
		return h
	}
	return fileutil.TitleFromStem(fileutil.Stem(doc.Path))
}
