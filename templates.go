package docfold

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/docfold/docfold/internal/assets"
)

// dateFormat matches the "Generated on" stamps in page footers.
const dateFormat = "January 2, 2006"

// renderTemplate loads a named template through the asset loader and
// executes it with data.
func renderTemplate(loader assets.AssetLoader, name string, data any) (string, error) {
	source, err := loader.LoadTemplate(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	tmpl, err := template.New(name).Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: executing %s: %v", ErrTemplateRender, name, err)
	}
	return buf.String(), nil
}

// pageData feeds the page template.
type pageData struct {
	Title     string
	Style     template.CSS
	TOC       template.HTML
	Content   template.HTML
	Generated string
}

// volumeChapter is one chapter section of the volume template.
type volumeChapter struct {
	ID    string
	Title string
	Body  template.HTML
}

// volumeData feeds the volume template.
type volumeData struct {
	Title     string
	Author    string
	Style     template.CSS
	TOC       template.HTML
	Chapters  []volumeChapter
	Generated string
}

// figureData feeds the figure template.
type figureData struct {
	Title     string
	Subtitle  string
	Source    string
	Caption   string
	Content   string
	Style     template.CSS
	Generated string
}

// figureCard is one entry on the figure index page.
type figureCard struct {
	Title   string
	Source  string
	File    string
	Preview string
}

// figureIndexData feeds the figure index template.
type figureIndexData struct {
	Title     string
	Style     template.CSS
	Figures   []figureCard
	Generated string
}

// diagramSection is one mermaid block on a diagram page.
type diagramSection struct {
	Number int
	ID     string
	Code   string
}

// diagramData feeds the diagram template.
type diagramData struct {
	Title     string
	Source    string
	Style     template.CSS
	Diagrams  []diagramSection
	Generated string
}

// diagramCard is one entry on the diagram index page.
type diagramCard struct {
	Title  string
	File   string
	Source string
	Count  int
}

// diagramIndexData feeds the diagram index template.
type diagramIndexData struct {
	Title     string
	Style     template.CSS
	Pages     []diagramCard
	Generated string
}

// documentCard is one entry on the document collection index page.
type documentCard struct {
	Title string
	File  string
	Name  string
}

// docIndexData feeds the document index template.
type docIndexData struct {
	Title     string
	Style     template.CSS
	Documents []documentCard
	Generated string
}

// stamp formats a generation timestamp for footers and index pages.
func stamp(now func() time.Time) string {
	return now().Format(dateFormat)
}
