package confluence

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanStorageHTML strips Confluence storage-format markup that has no HTML
// equivalent and rewrites layout elements into plain divs:
//
//   - ac:structured-macro, ac:parameter, ri:attachment are removed outright
//   - ac:layout-section becomes <div class="section">
//   - ac:layout-cell becomes <div class="column">
func CleanStorageHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("%w: parsing storage html: %v", ErrRemote, err)
	}

	doc.Find(`ac\:structured-macro, ac\:parameter, ri\:attachment`).Remove()

	doc.Find(`ac\:layout-section`).Each(func(_ int, s *goquery.Selection) {
		replaceWithDiv(s, "section")
	})
	doc.Find(`ac\:layout-cell`).Each(func(_ int, s *goquery.Selection) {
		replaceWithDiv(s, "column")
	})

	return doc.Find("body").Html()
}

// replaceWithDiv swaps an element for a classed div holding its children.
func replaceWithDiv(s *goquery.Selection, class string) {
	inner, err := s.Html()
	if err != nil {
		s.Remove()
		return
	}
	s.ReplaceWithHtml(fmt.Sprintf(`<div class="%s">%s</div>`, class, inner))
}
