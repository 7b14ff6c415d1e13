// Package docfold converts technical documentation between formats.
//
// It exposes one service per conversion:
//
//   - PageGenerator: Markdown files or directories to styled, paginated HTML
//     (single page, combined, or separate pages with an index).
//   - VolumeBuilder: a directory of Markdown chapters to a master HTML volume
//     with a title page and nested table of contents.
//   - BookBuilder: Markdown files to an EPUB book with e-reader styling.
//   - AsciiConverter: ASCII-art text files to academic-style HTML figure
//     pages plus an index.
//   - MermaidConverter: Markdown files with mermaid code fences to
//     self-contained interactive HTML pages plus an index.
//   - ConfluenceConverter: a Confluence page URL to a Markdown directory with
//     localized images, downloaded attachments, and a conversion summary.
//
// All services take a context.Context, return typed results, and wrap
// sentinel errors so callers can classify failures with errors.Is.
package docfold
