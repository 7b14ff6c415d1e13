// Package config loads and validates docfold YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docfold/docfold/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength    = 200  // Volume/book title
	MaxAuthorLength   = 100  // Author name
	MaxURLLength      = 2048 // Browser limit
	MaxStyleLength    = 50   // Style name
	MaxLanguageLength = 10   // BCP 47 tag
	MaxTextLength     = 500  // Description/free-form text
	MaxTokenLength    = 512  // API tokens
	MaxUsernameLength = 254  // RFC 5321 (email usernames)
)

// Config holds all configuration for document conversion.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Style      StyleConfig      `yaml:"style"`
	TOC        TOCConfig        `yaml:"toc"`
	Volume     VolumeConfig     `yaml:"volume"`
	Book       BookConfig       `yaml:"book"`
	Assets     AssetsConfig     `yaml:"assets"`
	Confluence ConfluenceConfig `yaml:"confluence"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// StyleConfig defines CSS styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Name of style in internal/assets/styles/ (empty = "document")
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool `yaml:"enabled"`
	MaxDepth int  `yaml:"maxDepth"` // 1-6, 0 = command default
}

// VolumeConfig defines master volume defaults.
type VolumeConfig struct {
	Title     string `yaml:"title"`     // Optional default volume title
	Author    string `yaml:"author"`    // Optional default author
	Prefix    string `yaml:"prefix"`    // Only include files with this prefix
	OrderFile string `yaml:"orderFile"` // Path to chapter ordering file
}

// BookConfig defines EPUB metadata defaults.
type BookConfig struct {
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"` // default "en"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ConfluenceConfig defines Confluence API access.
// Token takes precedence over username/password.
type ConfluenceConfig struct {
	BaseURL  string `yaml:"baseUrl"` // Optional; derived from the page URL when empty
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Token    string `yaml:"token"`
}

// Validate checks field lengths to prevent abuse in multi-tenant scenarios.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("volume.title", c.Volume.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("volume.author", c.Volume.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("volume.prefix", c.Volume.Prefix, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("volume.orderFile", c.Volume.OrderFile, MaxURLLength); err != nil {
		return err
	}

	if err := validateFieldLength("book.author", c.Book.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.description", c.Book.Description, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.language", c.Book.Language, MaxLanguageLength); err != nil {
		return err
	}

	if err := validateFieldLength("style.name", c.Style.Name, MaxStyleLength); err != nil {
		return err
	}

	if c.TOC.Enabled && c.TOC.MaxDepth != 0 {
		if c.TOC.MaxDepth < 1 || c.TOC.MaxDepth > 6 {
			return fmt.Errorf("toc.maxDepth: must be between 1 and 6, got %d", c.TOC.MaxDepth)
		}
	}

	if err := validateFieldLength("confluence.baseUrl", c.Confluence.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("confluence.username", c.Confluence.Username, MaxUsernameLength); err != nil {
		return err
	}
	if err := validateFieldLength("confluence.password", c.Confluence.Password, MaxTokenLength); err != nil {
		return err
	}
	if err := validateFieldLength("confluence.token", c.Confluence.Token, MaxTokenLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		// MaxDepth stays zero so each command applies its own default
		// depth (pages go deeper than volumes).
		TOC: TOCConfig{Enabled: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/docfold/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "docfold", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
