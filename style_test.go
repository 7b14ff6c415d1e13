package docfold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docfold/docfold/internal/assets"
)

func TestResolveStyleThemeName(t *testing.T) {
	css, err := resolveStyle(assets.NewEmbeddedLoader(), "academic", assets.DefaultStyleName)
	if err != nil {
		t.Fatalf("resolveStyle: %v", err)
	}
	if !strings.Contains(css, "font-family") {
		t.Errorf("academic theme missing font-family:\n%s", css[:100])
	}
}

func TestResolveStyleDefault(t *testing.T) {
	css, err := resolveStyle(assets.NewEmbeddedLoader(), "", assets.DefaultStyleName)
	if err != nil {
		t.Fatalf("resolveStyle: %v", err)
	}
	if css == "" {
		t.Error("expected default theme content")
	}
}

func TestResolveStyleRawCSS(t *testing.T) {
	raw := "body { color: red; }"
	css, err := resolveStyle(assets.NewEmbeddedLoader(), raw, assets.DefaultStyleName)
	if err != nil {
		t.Fatalf("resolveStyle: %v", err)
	}
	if css != raw {
		t.Errorf("raw CSS changed: %q", css)
	}
}

func TestResolveStyleFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.css")
	if err := os.WriteFile(path, []byte("h1 { color: blue; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	css, err := resolveStyle(assets.NewEmbeddedLoader(), path, assets.DefaultStyleName)
	if err != nil {
		t.Fatalf("resolveStyle: %v", err)
	}
	if css != "h1 { color: blue; }" {
		t.Errorf("got %q", css)
	}
}

func TestResolveStyleUnknownName(t *testing.T) {
	_, err := resolveStyle(assets.NewEmbeddedLoader(), "nonexistent", assets.DefaultStyleName)
	if !errors.Is(err, ErrStyleResolve) {
		t.Errorf("expected ErrStyleResolve, got %v", err)
	}
}

func TestResolveStyleMissingFile(t *testing.T) {
	_, err := resolveStyle(assets.NewEmbeddedLoader(), "/no/such/file.css", assets.DefaultStyleName)
	if !errors.Is(err, ErrStyleResolve) {
		t.Errorf("expected ErrStyleResolve, got %v", err)
	}
}
