package confluence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docfold/docfold/internal/fileutil"
)

// SummaryFilename is written next to the converted page.
const SummaryFilename = "conversion_summary.json"

// Summary records what a page conversion produced.
type Summary struct {
	PageTitle        string `json:"page_title"`
	SpaceKey         string `json:"space_key"`
	PageID           string `json:"page_id"`
	PageURL          string `json:"page_url"`
	MarkdownFile     string `json:"markdown_file"`
	ImagesCount      int    `json:"images_count"`
	AttachmentsCount int    `json:"attachments_count"`
	ConvertedAt      string `json:"converted_at"`
}

// Write saves the summary as indented JSON at path.
func (s *Summary) Write(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, data, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
