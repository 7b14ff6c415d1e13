package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a style or template name from a flag or
// config file is a bare name, not a path. Returns ErrInvalidAssetName if
// the name is empty or contains path separators, dots, or traversal
// characters; "document" passes, "../document" and "document.css" do not.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
