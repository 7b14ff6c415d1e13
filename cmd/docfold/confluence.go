package main

import (
	"context"
	"errors"
	"fmt"

	docfold "github.com/docfold/docfold"
	"github.com/docfold/docfold/internal/confluence"
	"github.com/docfold/docfold/internal/hints"
)

// runConfluence handles the confluence command.
func runConfluence(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConfluenceFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.url == "" && len(positional) == 1 {
		flags.url = positional[0]
	}
	if flags.url == "" || flags.output == "" {
		printConfluenceUsage(env.Stderr)
		return fmt.Errorf("%w: confluence needs --url and --output", ErrUsage)
	}

	cfg, err := loadRunConfig(flags.common.config)
	if err != nil {
		return err
	}

	// CLI flags win over config values.
	creds := confluence.Credentials{
		Username: flags.username,
		Password: flags.password,
		Token:    flags.token,
	}
	if creds.IsZero() {
		creds = confluence.Credentials{
			Username: cfg.Confluence.Username,
			Password: cfg.Confluence.Password,
			Token:    cfg.Confluence.Token,
		}
	}
	if creds.IsZero() {
		fmt.Fprintf(env.Stderr, "warning: no credentials configured, only public pages are reachable%s\n",
			hints.ForConfluenceAuth())
	}

	baseURL := flags.baseURL
	if baseURL == "" {
		baseURL = cfg.Confluence.BaseURL
	}
	if baseURL == "" {
		baseURL, err = confluence.BaseURL(flags.url)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForConfluenceURL())
		}
	}

	client := confluence.NewClient(baseURL, creds)
	conv := docfold.NewConfluenceConverter(client)
	result, err := conv.Convert(ctx, docfold.ConfluenceOptions{
		PageURL:   flags.url,
		OutputDir: flags.output,
	})
	if err != nil {
		switch {
		case errors.Is(err, confluence.ErrInvalidURL):
			return fmt.Errorf("%w%s", err, hints.ForConfluenceURL())
		case errors.Is(err, confluence.ErrUnauthorized):
			return fmt.Errorf("%w%s", err, hints.ForConfluenceAuth())
		case errors.Is(err, confluence.ErrRemote):
			return fmt.Errorf("%w%s", err, hints.ForNetwork())
		}
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Converted %q (page %s in space %s)\n", result.PageTitle, result.PageID, result.SpaceKey)
		fmt.Fprintf(env.Stdout, "  %s\n", result.MarkdownPath)
		fmt.Fprintf(env.Stdout, "  %d image(s), %d attachment(s)\n", result.Images, result.Attachments)
		fmt.Fprintf(env.Stdout, "  %s\n", result.SummaryPath)
	}
	return nil
}
