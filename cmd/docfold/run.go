package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/docfold/docfold/internal/config"
	"github.com/docfold/docfold/internal/hints"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// run dispatches to the requested subcommand. args excludes the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "confluence":
		return runConfluence(ctx, rest, env)
	case "html":
		return runHTML(ctx, rest, env)
	case "epub":
		return runEPUB(ctx, rest, env)
	case "volume":
		return runVolume(ctx, rest, env)
	case "ascii":
		return runAscii(ctx, rest, env)
	case "mermaid":
		return runMermaid(ctx, rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "docfold %s\n", Version)
		return nil
	case "help", "-h", "--help":
		runHelp(rest, env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

// loadRunConfig loads the named config file, or returns defaults when no
// name is given.
func loadRunConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err,
				hints.ForConfigNotFound([]string{name + ".yaml", "~/.config/docfold/" + name + ".yaml"}))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
