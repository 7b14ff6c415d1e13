package markdown

import (
	"regexp"
	"strings"
)

// Precompiled patterns for preprocessing passes.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress 3+ blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// ATX level-1 heading at line start
	h1Line = regexp.MustCompile(`(?m)^# (.+)$`)
)

// Normalize prepares Markdown source for rendering: converts CRLF/CR to LF
// and limits consecutive blank lines to two.
func Normalize(content string) string {
	content = NormalizeLineEndings(content)
	return CompressBlankLines(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// StripLeadingTitle removes the first level-1 heading from the content.
// Used by volume assembly, which renders the chapter title itself.
func StripLeadingTitle(content string) string {
	replaced := false
	return h1Line.ReplaceAllStringFunc(content, func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return ""
	})
}

// DemoteHeadings converts remaining level-1 headings to level 2 so chapter
// content nests under the generated chapter heading.
func DemoteHeadings(content string) string {
	return h1Line.ReplaceAllString(content, "## $1")
}

// FirstHeading returns the text of the first level-1 heading, or "".
func FirstHeading(content string) string {
	m := h1Line.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
