package main

import (
	"io"
	"os"
	"time"

	"github.com/docfold/docfold/internal/assets"
	"github.com/docfold/docfold/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
}

// DefaultEnv returns the production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}
}

// loaderFor returns the asset loader to use for a run. A configured asset
// base path layers a filesystem loader over the embedded assets so custom
// styles and templates shadow the built-in ones.
func loaderFor(env *Environment, cfg *config.Config) (assets.AssetLoader, error) {
	if cfg.Assets.BasePath == "" {
		return env.AssetLoader, nil
	}
	return assets.NewAssetResolver(cfg.Assets.BasePath)
}
