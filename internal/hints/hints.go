// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/docfold/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/docfold) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/docfold") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForConfluenceAuth returns hints for Confluence authentication failures.
func ForConfluenceAuth() string {
	return format("pass --token or --username/--password, or set them in the config file")
}

// ForConfluenceURL returns hints for unrecognized page URLs.
func ForConfluenceURL() string {
	return format("expected /spaces/KEY/pages/ID, /display/KEY/Title or viewpage.action?pageId=ID")
}

// ForNetwork returns hints for transport-level failures.
func ForNetwork() string {
	return format("check the instance URL and network connectivity; requests retry automatically")
}

// ForNoMarkdownFiles returns hints when a directory scan finds nothing to convert.
func ForNoMarkdownFiles(dir string) string {
	return format("no .md files in " + dir + "; check the path or the --prefix filter")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
