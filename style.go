package docfold

import (
	"fmt"
	"os"

	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/fileutil"
)

// resolveStyle resolves a style input to CSS content. The input may be a
// theme name ("academic"), a path to a .css file, or raw CSS content.
// Empty input falls back to the given default theme name.
func resolveStyle(loader assets.AssetLoader, input, defaultName string) (string, error) {
	if input == "" {
		input = defaultName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: loading style file %q: %v", ErrStyleResolve, input, err)
		}
		return string(content), nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		return input, nil
	}

	// Style name -> asset loader
	css, err := loader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleResolve, err)
	}
	return css, nil
}
