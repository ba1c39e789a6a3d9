package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// flagColumn is the width of the flag column in command help.
const flagColumn = 28

// helpEntry is one flag line in command help.
type helpEntry struct {
	flag string
	desc string
}

// helpSection groups related flags under a heading.
type helpSection struct {
	title   string
	entries []helpEntry
}

// commandHelp describes a command for printCommandHelp.
type commandHelp struct {
	usage    string
	summary  string
	sections []helpSection
}

var outputEntries = []helpEntry{
	{"-c, --config <name>", "Config file name or path (default: built-in defaults)"},
	{"-q, --quiet", "Only show errors"},
	{"-v, --verbose", "Show copied static files, titles and timing"},
}

var siteEntries = []helpEntry{
	{"-t, --template <name>", "Template name, or path to an .html file containing {{ Title }} and {{ Content }}"},
	{"    --assets <dir>", "Directory with templates/ and styles/ overriding the embedded assets"},
	{"-b, --base-path <url>", "Prefix for root-relative href and src attributes, e.g. /blog/ (env: MD2HTML_BASEPATH)"},
	{"-e, --engine <name>", "Conversion engine: native or goldmark"},
}

var commands = map[string]commandHelp{
	"build": {
		usage:   "md2html build [flags]",
		summary: "Generate the site: empty the public directory, copy every static file into it, then convert each markdown page under content to an HTML page at the mirrored path.",
		sections: []helpSection{
			{"Directories:", []helpEntry{
				{"    --content <dir>", "Markdown source directory (default: content)"},
				{"    --static <dir>", "Static files directory, copied verbatim (default: static)"},
				{"-o, --public <dir>", "Output directory, removed before each build (default: public)"},
				{"-w, --workers <n>", "Parallel workers (0 = auto)"},
			}},
			{"Site:", siteEntries},
			{"Output Control:", outputEntries},
		},
	},
	"convert": {
		usage:   "md2html convert <file.md> [flags]",
		summary: "Convert a single markdown file to a complete HTML page.",
		sections: []helpSection{
			{"Page:", []helpEntry{
				{"-o, --output <path>", "Output file, - for stdout (default: input with .html extension)"},
				{"    --title <s>", "Page title (default: first # heading)"},
			}},
			{"Site:", siteEntries},
			{"Output Control:", outputEntries},
		},
	},
	"config": {
		usage:   "md2html config [flags]",
		summary: "Print the effective configuration as YAML after applying environment overrides.",
		sections: []helpSection{
			{"Flags:", outputEntries[:1]},
		},
	},
	"version": {
		usage:   "md2html version",
		summary: "Show version information.",
	},
	"help": {
		usage:   "md2html help [command]",
		summary: "Show help for a command.",
	},
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from content and static")
	fmt.Fprintln(w, "  convert    Convert one markdown file to HTML")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printCommandHelp prints usage for cmd wrapped to width columns.
// It reports false when cmd is unknown.
func printCommandHelp(w io.Writer, width int, cmd string) bool {
	h, ok := commands[cmd]
	if !ok {
		return false
	}

	fmt.Fprintf(w, "Usage: %s\n\n", h.usage)
	fmt.Fprintln(w, wordwrap.String(h.summary, width))
	for _, s := range h.sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.title)
		for _, e := range s.entries {
			fmt.Fprint(w, formatEntry(e, width))
		}
	}
	return true
}

// formatEntry renders a flag with its description wrapped in a hanging
// indent after the flag column.
func formatEntry(e helpEntry, width int) string {
	label := "  " + e.flag
	descWidth := max(width-flagColumn, 20)
	lines := strings.Split(wordwrap.String(e.desc, descWidth), "\n")
	pad := strings.Repeat(" ", flagColumn)

	var b strings.Builder
	if n := ansi.PrintableRuneWidth(label); n < flagColumn {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", flagColumn-n))
	} else {
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(pad)
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString(pad)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}
	if !printCommandHelp(env.Stdout, env.width(), args[0]) {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
