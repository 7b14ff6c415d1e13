package main

import (
	"context"
	"fmt"

	docfold "github.com/docfold/docfold"
)

// runAscii handles the ascii command.
func runAscii(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseDirFlags("ascii", args, env.Stderr, printAsciiUsage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 2 {
		printAsciiUsage(env.Stderr)
		return fmt.Errorf("%w: ascii takes an input and an output directory", ErrUsage)
	}

	cfg, err := loadRunConfig(flags.config)
	if err != nil {
		return err
	}
	loader, err := loaderFor(env, cfg)
	if err != nil {
		return err
	}

	conv := docfold.NewAsciiConverter(loader)
	result, err := conv.Convert(ctx, positional[0], positional[1])
	if err != nil {
		return err
	}

	for _, name := range result.Skipped {
		fmt.Fprintf(env.Stderr, "warning: skipped %s (empty)\n", name)
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Converted %d figure(s)\n", result.Figures)
		if flags.verbose {
			for _, p := range result.FigurePaths {
				fmt.Fprintf(env.Stdout, "  %s\n", p)
			}
		}
		fmt.Fprintf(env.Stdout, "  %s\n", result.IndexPath)
	}
	return nil
}
