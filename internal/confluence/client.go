// Package confluence fetches pages from the Confluence REST API and prepares
// their storage-format HTML for Markdown conversion.
package confluence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	requestTimeout = 30 * time.Second
	maxRetries     = 3

	// maxResponseSize caps API response bodies at 50 MB.
	maxResponseSize = 50 * 1024 * 1024
)

// Credentials authenticate API requests. Token takes precedence over
// Username/Password basic auth. Both empty means anonymous access, which only
// reaches public pages.
type Credentials struct {
	Username string
	Password string
	Token    string
}

// IsZero reports whether no credentials are configured.
func (c Credentials) IsZero() bool {
	return c.Token == "" && c.Username == "" && c.Password == ""
}

// Client is a Confluence REST API client with automatic retries.
type Client struct {
	baseURL string
	creds   Credentials
	http    *retryablehttp.Client
}

// NewClient creates a Client for the given instance base URL
// (e.g. https://company.atlassian.net/wiki).
func NewClient(baseURL string, creds Credentials) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.HTTPClient.Timeout = requestTimeout
	rc.Logger = nil

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    rc,
	}
}

// Page is the API representation of a page with its storage-format body.
type Page struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space struct {
		Key string `json:"key"`
	} `json:"space"`
	Version struct {
		Number int    `json:"number"`
		When   string `json:"when"`
	} `json:"version"`
	Body struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
}

// Attachment is one file attached to a page.
type Attachment struct {
	Title string `json:"title"`
	Links struct {
		Download string `json:"download"`
	} `json:"_links"`
}

// Page fetches a page by ID with its storage body, space and version expanded.
func (c *Client) Page(ctx context.Context, pageID string) (*Page, error) {
	endpoint := fmt.Sprintf("%s/rest/api/content/%s?expand=body.storage,space,version,ancestors", c.baseURL, pageID)

	var page Page
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SpaceKeyForPage resolves the space key that contains the given page.
func (c *Client) SpaceKeyForPage(ctx context.Context, pageID string) (string, error) {
	endpoint := fmt.Sprintf("%s/rest/api/content/%s?expand=space", c.baseURL, pageID)

	var page Page
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return "", err
	}
	return page.Space.Key, nil
}

// PageIDByTitle resolves a page ID from its space key and title.
// Returns ErrPageNotFound if no page matches.
func (c *Client) PageIDByTitle(ctx context.Context, spaceKey, title string) (string, error) {
	endpoint := fmt.Sprintf("%s/rest/api/content?spaceKey=%s&title=%s&expand=space",
		c.baseURL, url.QueryEscape(spaceKey), url.QueryEscape(title))

	var result struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}
	if len(result.Results) == 0 {
		return "", fmt.Errorf("%w: %q in space %s", ErrPageNotFound, title, spaceKey)
	}
	return result.Results[0].ID, nil
}

// Attachments lists the files attached to a page.
func (c *Client) Attachments(ctx context.Context, pageID string) ([]Attachment, error) {
	endpoint := fmt.Sprintf("%s/rest/api/content/%s/child/attachment?expand=version", c.baseURL, pageID)

	var result struct {
		Results []Attachment `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// Download fetches a raw resource such as an image or attachment.
// Relative URLs are resolved against the instance base URL.
func (c *Client) Download(ctx context.Context, resourceURL string) ([]byte, error) {
	if strings.HasPrefix(resourceURL, "/") {
		resourceURL = c.baseURL + resourceURL
	}

	resp, err := c.get(ctx, resourceURL, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrRemote, resourceURL, err)
	}
	return data, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	resp, err := c.get(ctx, endpoint, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseSize)
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %v", ErrRemote, endpoint, err)
	}
	return nil
}

// get performs an authenticated GET, mapping HTTP status to sentinel errors.
func (c *Client) get(ctx context.Context, endpoint, accept string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	switch {
	case c.creds.Token != "":
		req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	case c.creds.Username != "":
		req.SetBasicAuth(c.creds.Username, c.creds.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrUnauthorized, resp.StatusCode, endpoint)
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, endpoint)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrRemote, resp.StatusCode, endpoint)
	}
}
