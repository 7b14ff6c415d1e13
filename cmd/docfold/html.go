package main

import (
	"context"
	"errors"
	"fmt"

	docfold "github.com/docfold/docfold"
	"github.com/docfold/docfold/internal/hints"
)

// runHTML handles the html command.
func runHTML(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseHTMLFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 1 {
		printHTMLUsage(env.Stderr)
		return fmt.Errorf("%w: html takes exactly one input path", ErrUsage)
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
	style := flags.style
	if style == "" {
		style = cfg.Style.Name
	}
	toc := cfg.TOC.Enabled && !flags.noTOC
	depth := flags.tocDepth
	if depth == 0 {
		depth = cfg.TOC.MaxDepth
	}
	output := flags.output
	if output == "" && cfg.Output.DefaultDir != "" && flags.separate {
		output = cfg.Output.DefaultDir
	}

	gen := docfold.NewPageGenerator(loader)
	result, err := gen.Generate(ctx, positional[0], output, docfold.PageOptions{
		Title:       flags.title,
		Style:       style,
		TOC:         toc,
		TOCMaxDepth: depth,
		Separate:    flags.separate,
	})
	if err != nil {
		if errors.Is(err, docfold.ErrNoMarkdownFiles) {
			return fmt.Errorf("%w%s", err, hints.ForNoMarkdownFiles(positional[0]))
		}
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Converted %d document(s)\n", result.Documents)
		fmt.Fprintf(env.Stdout, "  %s\n", result.OutputPath)
		if flags.common.verbose {
			for _, p := range result.Pages {
				if p != result.OutputPath {
					fmt.Fprintf(env.Stdout, "  %s\n", p)
				}
			}
		}
	}
	return nil
}
