package main

// Notes:
// - exitCodeFor: we test the sentinel errors from docfold and the internal
//   packages, plus wrapped errors to verify the errors.Is() chain works.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and custom codes are below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	docfold "github.com/docfold/docfold"
	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/config"
	"github.com/docfold/docfold/internal/confluence"
	"github.com/docfold/docfold/internal/epub"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Remote errors (exit 4)
		{"unauthorized", confluence.ErrUnauthorized, ExitRemote},
		{"page not found", confluence.ErrPageNotFound, ExitRemote},
		{"remote", confluence.ErrRemote, ExitRemote},
		{"wrapped unauthorized", fmt.Errorf("fetching: %w", confluence.ErrUnauthorized), ExitRemote},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"input not found", docfold.ErrInputNotFound, ExitIO},
		{"no markdown files", docfold.ErrNoMarkdownFiles, ExitIO},
		{"no input files", docfold.ErrNoInputFiles, ExitIO},
		{"output write", docfold.ErrOutputWrite, ExitIO},
		{"order file", docfold.ErrOrderFile, ExitIO},
		{"epub write", epub.ErrWrite, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"empty input", docfold.ErrEmptyInput, ExitUsage},
		{"style resolve", docfold.ErrStyleResolve, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"template not found", assets.ErrTemplateNotFound, ExitUsage},
		{"invalid asset name", assets.ErrInvalidAssetName, ExitUsage},
		{"invalid base path", assets.ErrInvalidBasePath, ExitUsage},
		{"invalid url", confluence.ErrInvalidURL, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"epub build", epub.ErrBuild, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitRemote} {
		if code >= 126 {
			t.Errorf("exit code %d conflicts with shell conventions", code)
		}
	}
}
