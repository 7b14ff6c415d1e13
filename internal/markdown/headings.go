package markdown

import (
	"fmt"
	"regexp"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// headingPattern matches rendered headings that carry an id attribute.
// Headings without IDs are invisible to TOC generation.
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTag strips markup from heading text for TOC entries.
var htmlTag = regexp.MustCompile(`<[^>]+>`)

// idAttr matches element id attributes. The leading space keeps
// attributes like data-id out of the match.
var idAttr = regexp.MustCompile(`(\sid=")([^"]*)(")`)

// anchorHref matches internal anchor references.
var anchorHref = regexp.MustCompile(`(href="#)([^"]*)(")`)

// Heading is one entry extracted from rendered HTML.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// ExtractHeadings parses rendered HTML and returns headings between
// minLevel and maxLevel inclusive.
func ExtractHeadings(htmlContent string, minLevel, maxLevel int) []Heading {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []Heading
	for _, m := range matches {
		level := int(m[1][0] - '0')
		if level < minLevel || level > maxLevel {
			continue
		}
		headings = append(headings, Heading{
			Level: level,
			ID:    m[2],
			Text:  strings.TrimSpace(htmlTag.ReplaceAllString(m[3], "")),
		})
	}
	return headings
}

// ScopeAnchors prefixes every element id and internal anchor href in the
// fragment. Volume assembly uses this to keep anchors unique across chapters
// ("overview" in chapter 2 becomes "chapter-2-overview"). Ids are rewritten
// on all elements, not just headings, so footnote references and backlinks
// keep pointing at their targets after scoping.
func ScopeAnchors(htmlContent, prefix string) string {
	htmlContent = idAttr.ReplaceAllString(htmlContent, "${1}"+prefix+"-${2}${3}")
	return anchorHref.ReplaceAllString(htmlContent, "${1}"+prefix+"-${2}${3}")
}

// Anchor returns a URL-friendly anchor for arbitrary text.
// Falls back to a minimal cleanup when the normalizer rejects the input.
func Anchor(text string) string {
	if s, err := slug.Normalize(text); err == nil && s != "" {
		return s
	}
	s := strings.ToLower(strings.TrimSpace(text))
	s = regexp.MustCompile(`[^\w\s-]`).ReplaceAllString(s, "")
	s = regexp.MustCompile(`[\s_-]+`).ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BuildTOC renders headings as nested <ul> lists. Levels are normalized so
// the shallowest heading becomes the top level, and level jumps nest one
// step at a time.
func BuildTOC(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	minLevel := headings[0].Level
	for _, h := range headings {
		if h.Level < minLevel {
			minLevel = h.Level
		}
	}

	var buf strings.Builder
	buf.WriteString("<ul>\n")
	depth := 1

	for _, h := range headings {
		want := h.Level - minLevel + 1
		if want > depth+1 {
			want = depth + 1
		}
		for depth < want {
			buf.WriteString("<ul>\n")
			depth++
		}
		for depth > want {
			buf.WriteString("</ul>\n")
			depth--
		}
		fmt.Fprintf(&buf, "<li><a href=\"#%s\">%s</a></li>\n", htmlEscape(h.ID), htmlEscape(h.Text))
	}

	for depth > 0 {
		buf.WriteString("</ul>\n")
		depth--
	}
	return buf.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
