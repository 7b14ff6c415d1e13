package main

import (
	"errors"
	"os"

	docfold "github.com/docfold/docfold"
	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/config"
	"github.com/docfold/docfold/internal/confluence"
	"github.com/docfold/docfold/internal/epub"
)

// Exit codes for the docfold CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRemote  = 4 // Confluence fetch or auth failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Remote errors (exit 4)
	if errors.Is(err, confluence.ErrUnauthorized) ||
		errors.Is(err, confluence.ErrPageNotFound) ||
		errors.Is(err, confluence.ErrRemote) {
		return ExitRemote
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docfold.ErrInputNotFound) ||
		errors.Is(err, docfold.ErrNoMarkdownFiles) ||
		errors.Is(err, docfold.ErrNoInputFiles) ||
		errors.Is(err, docfold.ErrOutputWrite) ||
		errors.Is(err, docfold.ErrOrderFile) ||
		errors.Is(err, epub.ErrWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, docfold.ErrEmptyInput) ||
		errors.Is(err, docfold.ErrStyleResolve) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, confluence.ErrInvalidURL) {
		return ExitUsage
	}

	return ExitGeneral
}
