package confluence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/docfold/docfold/internal/fileutil"
)

// imageExtensions are recognized raster/vector suffixes; anything else gets
// a .png default so the output renders in viewers that sniff extensions.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}

// ImageFetcher downloads a resource by URL.
type ImageFetcher interface {
	Download(ctx context.Context, resourceURL string) ([]byte, error)
}

// LocalizeImages downloads every <img> referenced by the HTML into imagesDir
// and rewrites the src attributes to ./images/{filename}. Images that fail to
// download keep their original src. Returns the rewritten HTML and the number
// of images saved.
func LocalizeImages(ctx context.Context, htmlContent string, fetcher ImageFetcher, imagesDir string) (string, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", 0, fmt.Errorf("%w: parsing html: %v", ErrRemote, err)
	}

	saved := 0
	counter := 1
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}

		alt := img.AttrOr("alt", fmt.Sprintf("image_%d", counter))
		name := imageFilename(alt, counter)
		counter++

		data, err := fetcher.Download(ctx, src)
		if err != nil {
			// Keep the remote reference rather than losing the image.
			return
		}

		if err := os.WriteFile(filepath.Join(imagesDir, name), data, fileutil.FilePermissions); err != nil {
			return
		}

		img.SetAttr("src", "./images/"+name)
		saved++
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", 0, fmt.Errorf("%w: serializing html: %v", ErrRemote, err)
	}
	return out, saved, nil
}

// imageFilename builds a safe local filename from alt text and a counter.
func imageFilename(alt string, counter int) string {
	name := fileutil.SanitizeFilename(alt)
	name = strings.ReplaceAll(name, " ", "_")
	name = fmt.Sprintf("%s_%d", name, counter)

	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return name
		}
	}
	return name + ".png"
}
