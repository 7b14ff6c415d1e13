package main

import (
	"context"
	"errors"
	"fmt"

	docfold "github.com/docfold/docfold"
	"github.com/docfold/docfold/internal/hints"
)

// runVolume handles the volume command.
func runVolume(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseVolumeFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	dir := flags.dir
	if dir == "" && len(positional) == 1 {
		dir = positional[0]
	}
	if dir == "" {
		printVolumeUsage(env.Stderr)
		return fmt.Errorf("%w: volume needs --dir", ErrUsage)
	}
	if flags.htmlOnly && flags.epubOnly {
		return fmt.Errorf("%w: --html-only and --epub-only are mutually exclusive", ErrUsage)
	}

	cfg, err := loadRunConfig(flags.common.config)
	if err != nil {
		return err
	}
	loader, err := loaderFor(env, cfg)
	if err != nil {
		return err
	}

	// CLI flags win over config values.
	title := flags.title
	if title == "" {
		title = cfg.Volume.Title
	}
	author := flags.author
	if author == "" {
		author = cfg.Volume.Author
	}
	prefix := flags.prefix
	if prefix == "" {
		prefix = cfg.Volume.Prefix
	}
	orderFile := flags.orderFile
	if orderFile == "" {
		orderFile = cfg.Volume.OrderFile
	}
	style := flags.style
	if style == "" {
		style = cfg.Style.Name
	}

	builder := docfold.NewVolumeBuilder(loader)
	result, err := builder.Build(ctx, dir, flags.output, docfold.VolumeOptions{
		Title:     title,
		Author:    author,
		Style:     style,
		Prefix:    prefix,
		OrderFile: orderFile,
		HTML:      flags.htmlOnly,
		EPUB:      flags.epubOnly,
	})
	if err != nil {
		if errors.Is(err, docfold.ErrNoMarkdownFiles) {
			return fmt.Errorf("%w%s", err, hints.ForNoMarkdownFiles(dir))
		}
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}
	for _, name := range result.Skipped {
		fmt.Fprintf(env.Stderr, "warning: skipped draft %s\n", name)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Assembled %d chapter(s)\n", result.Chapters)
		if flags.common.verbose {
			for i, title := range result.ChapterTitles {
				fmt.Fprintf(env.Stdout, "  %d. %s\n", i+1, title)
			}
		}
		if result.HTMLPath != "" {
			fmt.Fprintf(env.Stdout, "  %s\n", result.HTMLPath)
		}
		if result.EPUBPath != "" {
			fmt.Fprintf(env.Stdout, "  %s\n", result.EPUBPath)
		}
	}
	return nil
}
