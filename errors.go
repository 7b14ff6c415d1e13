package docfold

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("input cannot be empty")
	ErrInputNotFound   = errors.New("input path not found")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrNoInputFiles    = errors.New("no input files found")
	ErrTemplateRender  = errors.New("template rendering failed")
	ErrOutputWrite     = errors.New("failed to write output")
	ErrOrderFile       = errors.New("failed to read order file")
	ErrStyleResolve    = errors.New("failed to resolve style")
)
