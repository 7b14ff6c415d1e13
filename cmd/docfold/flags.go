package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-item details")
}

// htmlFlags holds flags for the html command.
type htmlFlags struct {
	common   commonFlags
	output   string
	title    string
	style    string
	separate bool
	noTOC    bool
	tocDepth int
}

// epubFlags holds flags for the epub command.
type epubFlags struct {
	common      commonFlags
	output      string
	dir         string
	title       string
	author      string
	description string
	language    string
}

// volumeFlags holds flags for the volume command.
type volumeFlags struct {
	common    commonFlags
	dir       string
	output    string
	title     string
	author    string
	style     string
	prefix    string
	orderFile string
	htmlOnly  bool
	epubOnly  bool
}

// confluenceFlags holds flags for the confluence command.
type confluenceFlags struct {
	common   commonFlags
	url      string
	output   string
	baseURL  string
	username string
	password string
	token    string
}

// newFlagSet creates a FlagSet that reports usage to w on parse errors.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseHTMLFlags parses html command flags and returns positional args.
func parseHTMLFlags(args []string, w io.Writer) (*htmlFlags, []string, error) {
	f := &htmlFlags{}
	fs := newFlagSet("html", w, printHTMLUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from H1)")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or raw CSS")
	fs.BoolVar(&f.separate, "separate", false, "one page per file plus an index")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.IntVar(&f.tocDepth, "toc-depth", 0, "max heading depth for TOC (1-6)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseEPUBFlags parses epub command flags and returns positional args.
func parseEPUBFlags(args []string, w io.Writer) (*epubFlags, []string, error) {
	f := &epubFlags{}
	fs := newFlagSet("epub", w, printEPUBUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output .epub path")
	fs.StringVarP(&f.dir, "dir", "d", "", "chapter directory (one chapter per file)")
	fs.StringVar(&f.title, "title", "", "book title")
	fs.StringVar(&f.author, "author", "", "book author")
	fs.StringVar(&f.description, "description", "", "book description")
	fs.StringVar(&f.language, "language", "", "ISO language code (default en)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseVolumeFlags parses volume command flags and returns positional args.
func parseVolumeFlags(args []string, w io.Writer) (*volumeFlags, []string, error) {
	f := &volumeFlags{}
	fs := newFlagSet("volume", w, printVolumeUsage)
	fs.StringVarP(&f.dir, "dir", "d", "", "chapter directory")
	fs.StringVarP(&f.output, "output", "o", "", "output path without extension")
	fs.StringVar(&f.title, "title", "", "volume title (\"\" = directory name)")
	fs.StringVar(&f.author, "author", "", "volume author")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or raw CSS")
	fs.StringVar(&f.prefix, "prefix", "", "only include files with this prefix")
	fs.StringVar(&f.orderFile, "order-file", "", "chapter ordering file")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "produce only the HTML volume")
	fs.BoolVar(&f.epubOnly, "epub-only", false, "produce only the EPUB volume")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfluenceFlags parses confluence command flags.
func parseConfluenceFlags(args []string, w io.Writer) (*confluenceFlags, []string, error) {
	f := &confluenceFlags{}
	fs := newFlagSet("confluence", w, printConfluenceUsage)
	fs.StringVarP(&f.url, "url", "u", "", "Confluence page URL")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.baseURL, "base-url", "", "instance base URL (\"\" = derive from page URL)")
	fs.StringVar(&f.username, "username", "", "basic auth username")
	fs.StringVar(&f.password, "password", "", "basic auth password or API token")
	fs.StringVar(&f.token, "token", "", "bearer token (takes precedence)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDirFlags parses commands that take only common flags plus
// positional input/output directories (ascii, mermaid).
func parseDirFlags(name string, args []string, w io.Writer, usage func(io.Writer)) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := newFlagSet(name, w, usage)
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
