package confluence

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var excessiveNewlines = regexp.MustCompile(`\n\s*\n\s*\n`)

// ToMarkdown converts cleaned page HTML to GitHub-flavored Markdown.
func ToMarkdown(htmlContent string) (string, error) {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	out, err := conv.ConvertString(htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: converting to markdown: %v", ErrRemote, err)
	}

	out = excessiveNewlines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out), nil
}

// MetadataHeader renders the provenance block prepended to converted pages.
func MetadataHeader(page *Page) string {
	// Trailing double spaces are Markdown hard line breaks; without them
	// the metadata lines collapse into one paragraph.
	return fmt.Sprintf("# %s\n\n**Space:** %s  \n**Page ID:** %s  \n**Last Updated:** %s  \n**Version:** %d\n\n---\n\n",
		page.Title, page.Space.Key, page.ID, page.Version.When, page.Version.Number)
}
