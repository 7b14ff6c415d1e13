package main

import (
	"context"
	"fmt"

	docfold "github.com/docfold/docfold"
)

// runMermaid handles the mermaid command.
func runMermaid(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseDirFlags("mermaid", args, env.Stderr, printMermaidUsage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 2 {
		printMermaidUsage(env.Stderr)
		return fmt.Errorf("%w: mermaid takes an input and an output directory", ErrUsage)
	}

	cfg, err := loadRunConfig(flags.config)
	if err != nil {
		return err
	}
	loader, err := loaderFor(env, cfg)
	if err != nil {
		return err
	}

	conv := docfold.NewMermaidConverter(loader)
	result, err := conv.Convert(ctx, positional[0], positional[1])
	if err != nil {
		return err
	}

	for _, name := range result.Skipped {
		fmt.Fprintf(env.Stderr, "warning: skipped %s (no mermaid blocks)\n", name)
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Converted %d diagram(s) across %d page(s)\n", result.Diagrams, result.Pages)
		if flags.verbose {
			for _, p := range result.PagePaths {
				fmt.Fprintf(env.Stdout, "  %s\n", p)
			}
		}
		fmt.Fprintf(env.Stdout, "  %s\n", result.IndexPath)
	}
	return nil
}
