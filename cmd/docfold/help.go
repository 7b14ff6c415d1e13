package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfold <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  confluence  Convert a Confluence page to Markdown")
	fmt.Fprintln(w, "  html        Convert Markdown to styled HTML pages")
	fmt.Fprintln(w, "  epub        Convert Markdown to an EPUB book")
	fmt.Fprintln(w, "  volume      Assemble a chapter directory into a master volume")
	fmt.Fprintln(w, "  ascii       Convert ASCII-art files to HTML figure pages")
	fmt.Fprintln(w, "  mermaid     Convert Mermaid code blocks to interactive HTML")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docfold help <command>' for details on a specific command.")
}

// printHTMLUsage prints usage for the html command.
func printHTMLUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfold html <file|dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file or directory to styled HTML.")
	fmt.Fprintln(w, "Directories produce one combined page unless --separate is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file or directory")
	fmt.Fprintln(w, "      --title <s>        Document title (\"\" = auto from H1)")
	fmt.Fprintln(w, "      --style <s>        CSS style name, file path, or raw CSS")
	fmt.Fprintln(w, "      --separate         One page per file plus an index")
	fmt.Fprintln(w, "      --no-toc           Disable table of contents")
	fmt.Fprintln(w, "      --toc-depth <n>    Max heading depth for TOC (1-6)")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-item details")
}

// printEPUBUsage prints usage for the epub command.
func printEPUBUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfold epub <file> [flags]")
	fmt.Fprintln(w, "       docfold epub --dir <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to an EPUB book. With --dir, each file becomes")
	fmt.Fprintln(w, "a chapter in sorted order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>      Output .epub path")
	fmt.Fprintln(w, "  -d, --dir <dir>          Chapter directory")
	fmt.Fprintln(w, "      --title <s>          Book title")
	fmt.Fprintln(w, "      --author <s>         Book author")
	fmt.Fprintln(w, "      --description <s>    Book description")
	fmt.Fprintln(w, "      --language <s>       ISO language code (default en)")
	fmt.Fprintln(w, "  -c, --config <name>      Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show per-item details")
}

// printVolumeUsage prints usage for the volume command.
func printVolumeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfold volume --dir <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble a directory of Markdown chapters into an HTML master")
	fmt.Fprintln(w, "volume and an EPUB book.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <dir>          Chapter directory")
	fmt.Fprintln(w, "  -o, --output <path>      Output path without extension")
	fmt.Fprintln(w, "      --title <s>          Volume title (\"\" = directory name)")
	fmt.Fprintln(w, "      --author <s>         Volume author")
	fmt.Fprintln(w, "      --style <s>          CSS style name, file path, or raw CSS")
	fmt.Fprintln(w, "      --prefix <s>         Only include files with this prefix")
	fmt.Fprintln(w, "      --order-file <path>  Chapter ordering file (one name per line)")
	fmt.Fprintln(w, "      --html-only          Produce only the HTML volume")
	fmt.Fprintln(w, "      --epub-only          Produce only the EPUB volume")
	fmt.Fprintln(w, "  -c, --config <name>      Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show per-item details")
}

// printConfluenceUsage prints usage for the confluence command.
func printConfluenceUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docfold confluence --url <page-url> --output <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download a Confluence page and convert it to Markdown with")
	fmt.Fprintln(w, "localized images, attachments, and a conversion summary.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -u, --url <url>          Confluence page URL")
	fmt.Fprintln(w, "  -o, --output <dir>       Output directory")
	fmt.Fprintln(w, "      --base-url <url>     Instance base URL (\"\" = derive from page URL)")
	fmt.Fprintln(w, "      --username <s>       Basic auth username")
	fmt.Fprintln(w, "      --password <s>       Basic auth password or API token")
	fmt.Fprintln(w, "      --token <s>          Bearer token (takes precedence)")
	fmt.Fprintln(w, "  -c, --config <name>      Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show per-item details")
}

// printDirUsage prints usage for the ascii and mermaid commands.
func printDirUsage(w io.Writer, name, what string) {
	fmt.Fprintf(w, "Usage: docfold %s <input-dir> <output-dir>\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, what)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-item details")
}

func printAsciiUsage(w io.Writer) {
	printDirUsage(w, "ascii", "Convert ASCII-art .txt and .md files to HTML figure pages\nwith an index.")
}

func printMermaidUsage(w io.Writer) {
	printDirUsage(w, "mermaid", "Extract Mermaid code blocks from Markdown files and render\nthem as interactive HTML pages with an index.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "confluence":
		printConfluenceUsage(env.Stdout)
	case "html":
		printHTMLUsage(env.Stdout)
	case "epub":
		printEPUBUsage(env.Stdout)
	case "volume":
		printVolumeUsage(env.Stdout)
	case "ascii":
		printAsciiUsage(env.Stdout)
	case "mermaid":
		printMermaidUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docfold version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docfold help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
