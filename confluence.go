package docfold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docfold/docfold/internal/confluence"
	"github.com/docfold/docfold/internal/fileutil"
)

// PageClient is the Confluence API surface the converter needs. Satisfied
// by *confluence.Client.
type PageClient interface {
	Page(ctx context.Context, pageID string) (*confluence.Page, error)
	SpaceKeyForPage(ctx context.Context, pageID string) (string, error)
	PageIDByTitle(ctx context.Context, spaceKey, title string) (string, error)
	Attachments(ctx context.Context, pageID string) ([]confluence.Attachment, error)
	Download(ctx context.Context, resourceURL string) ([]byte, error)
}

var _ PageClient = (*confluence.Client)(nil)

// ConfluenceOptions control a page conversion.
type ConfluenceOptions struct {
	// PageURL is the full URL of the page to convert.
	PageURL string
	// OutputDir receives the Markdown file, images/, attachments/, and
	// the conversion summary.
	OutputDir string
}

// ConfluenceResult reports what a page conversion produced.
type ConfluenceResult struct {
	PageTitle    string
	PageID       string
	SpaceKey     string
	MarkdownPath string
	Images       int
	Attachments  int
	SummaryPath  string
	// Warnings carries non-fatal download failures.
	Warnings []string
}

// ConfluenceConverter fetches a Confluence page and converts it to
// Markdown with localized images and downloaded attachments.
type ConfluenceConverter struct {
	client PageClient
	now    func() time.Time
}

// NewConfluenceConverter creates a converter over the given client.
func NewConfluenceConverter(client PageClient) *ConfluenceConverter {
	return &ConfluenceConverter{client: client, now: time.Now}
}

// Convert downloads the page behind opts.PageURL and writes its Markdown
// rendition plus media into opts.OutputDir.
func (c *ConfluenceConverter) Convert(ctx context.Context, opts ConfluenceOptions) (*ConfluenceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.PageURL == "" {
		return nil, fmt.Errorf("%w: no page URL", ErrEmptyInput)
	}
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("%w: no output directory", ErrEmptyInput)
	}

	ref, err := confluence.ParsePageURL(opts.PageURL)
	if err != nil {
		return nil, err
	}
	pageID, spaceKey, err := c.resolveRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	page, err := c.client.Page(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if page.Space.Key != "" {
		spaceKey = page.Space.Key
	}

	imagesDir := filepath.Join(opts.OutputDir, "images")
	attachmentsDir := filepath.Join(opts.OutputDir, "attachments")
	for _, dir := range []string{opts.OutputDir, imagesDir, attachmentsDir} {
		if err := fileutil.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
		}
	}

	result := &ConfluenceResult{
		PageTitle: page.Title,
		PageID:    page.ID,
		SpaceKey:  spaceKey,
	}

	// Images are localized before macro cleanup so the downloader still
	// sees the original src attributes.
	htmlContent, imageCount, err := confluence.LocalizeImages(ctx, page.Body.Storage.Value, c.client, imagesDir)
	if err != nil {
		return nil, err
	}
	result.Images = imageCount

	htmlContent, err = confluence.CleanStorageHTML(htmlContent)
	if err != nil {
		return nil, err
	}
	body, err := confluence.ToMarkdown(htmlContent)
	if err != nil {
		return nil, err
	}

	markdownName := fileutil.SanitizeFilename(page.Title) + ".md"
	result.MarkdownPath = filepath.Join(opts.OutputDir, markdownName)
	content := confluence.MetadataHeader(page) + body + "\n"
	if err := os.WriteFile(result.MarkdownPath, []byte(content), fileutil.FilePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	attachments, err := c.client.Attachments(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	for _, att := range attachments {
		data, err := c.client.Download(ctx, att.Links.Download)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("attachment %q: %v", att.Title, err))
			continue
		}
		name := fileutil.SanitizeFilename(att.Title)
		if err := os.WriteFile(filepath.Join(attachmentsDir, name), data, fileutil.FilePermissions); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("attachment %q: %v", att.Title, err))
			continue
		}
		result.Attachments++
	}

	summary := &confluence.Summary{
		PageTitle:        page.Title,
		SpaceKey:         spaceKey,
		PageID:           page.ID,
		PageURL:          opts.PageURL,
		MarkdownFile:     markdownName,
		ImagesCount:      result.Images,
		AttachmentsCount: result.Attachments,
		ConvertedAt:      c.now().Format(time.RFC3339),
	}
	result.SummaryPath = filepath.Join(opts.OutputDir, confluence.SummaryFilename)
	if err := summary.Write(result.SummaryPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return result, nil
}

// resolveRef fills in whichever of page ID and space key the URL format
// left out.
func (c *ConfluenceConverter) resolveRef(ctx context.Context, ref confluence.PageRef) (pageID, spaceKey string, err error) {
	switch {
	case ref.PageID != "" && ref.SpaceKey != "":
		return ref.PageID, ref.SpaceKey, nil
	case ref.PageID != "":
		key, err := c.client.SpaceKeyForPage(ctx, ref.PageID)
		if err != nil {
			return "", "", err
		}
		return ref.PageID, key, nil
	default:
		id, err := c.client.PageIDByTitle(ctx, ref.SpaceKey, ref.Title)
		if err != nil {
			return "", "", err
		}
		return id, ref.SpaceKey, nil
	}
}
