package confluence

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// PageRef identifies a page extracted from a URL. Exactly one of PageID or
// Title is set for the display format; modern URLs carry both SpaceKey and
// PageID.
type PageRef struct {
	SpaceKey string
	PageID   string
	Title    string
}

// URL formats, newest first:
//
//	/spaces/SPACE/pages/123456/Page+Title
//	/display/SPACE/Page+Title
//	/pages/viewpage.action?pageId=123456
var (
	spacesPattern   = regexp.MustCompile(`/spaces/([^/]+)/pages/(\d+)`)
	displayPattern  = regexp.MustCompile(`/display/([^/]+)/([^/?#]+)`)
	viewpagePattern = regexp.MustCompile(`/pages/viewpage\.action\?pageId=(\d+)`)
)

// ParsePageURL extracts a page reference from a Confluence page URL.
// Returns ErrInvalidURL if no known format matches.
func ParsePageURL(pageURL string) (PageRef, error) {
	if m := spacesPattern.FindStringSubmatch(pageURL); m != nil {
		return PageRef{SpaceKey: m[1], PageID: m[2]}, nil
	}
	if m := viewpagePattern.FindStringSubmatch(pageURL); m != nil {
		return PageRef{PageID: m[1]}, nil
	}
	if m := displayPattern.FindStringSubmatch(pageURL); m != nil {
		title := strings.ReplaceAll(m[2], "+", " ")
		if unescaped, err := url.QueryUnescape(title); err == nil {
			title = unescaped
		}
		return PageRef{SpaceKey: m[1], Title: title}, nil
	}
	return PageRef{}, fmt.Errorf("%w: %s", ErrInvalidURL, pageURL)
}

// BaseURL derives the Confluence instance base URL from a page URL.
// Keeps the /wiki prefix used by Atlassian cloud instances.
func BaseURL(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, pageURL)
	}

	base := u.Scheme + "://" + u.Host
	if strings.HasPrefix(u.Path, "/wiki/") {
		base += "/wiki"
	}
	return base, nil
}
