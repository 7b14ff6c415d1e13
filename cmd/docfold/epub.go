package main

import (
	"context"
	"fmt"
	"os"

	docfold "github.com/docfold/docfold"
	"github.com/docfold/docfold/internal/fileutil"
)

// runEPUB handles the epub command.
func runEPUB(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseEPUBFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	input := flags.dir
	switch {
	case input != "" && len(positional) > 0:
		printEPUBUsage(env.Stderr)
		return fmt.Errorf("%w: give a file or --dir, not both", ErrUsage)
	case input == "" && len(positional) == 1:
		input = positional[0]
	case input == "":
		printEPUBUsage(env.Stderr)
		return fmt.Errorf("%w: epub needs a file or --dir", ErrUsage)
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
	author := flags.author
	if author == "" {
		author = cfg.Book.Author
	}
	description := flags.description
	if description == "" {
		description = cfg.Book.Description
	}
	language := flags.language
	if language == "" {
		language = cfg.Book.Language
	}

	builder := docfold.NewBookBuilder(loader)
	result, err := builder.Build(ctx, input, flags.output, docfold.BookOptions{
		Title:       flags.title,
		Author:      author,
		Description: description,
		Language:    language,
	})
	if err != nil {
		return err
	}

	for _, name := range result.Skipped {
		fmt.Fprintf(env.Stderr, "warning: skipped %s (no usable content)\n", name)
	}
	if !flags.common.quiet {
		size := ""
		if info, err := os.Stat(result.OutputPath); err == nil {
			size = ", " + fileutil.HumanSize(info.Size())
		}
		fmt.Fprintf(env.Stdout, "Wrote %s (%d chapter(s)%s)\n", result.OutputPath, result.Chapters, size)
		if flags.common.verbose {
			for i, title := range result.ChapterTitles {
				fmt.Fprintf(env.Stdout, "  %d. %s\n", i+1, title)
			}
		}
	}
	return nil
}
