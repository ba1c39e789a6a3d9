package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds flags that override config values.
// Empty strings and zero workers mean "not set".
type siteFlags struct {
	template string
	assets   string
	basePath string
	engine   string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	content string
	static  string
	public  string
	workers int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	site   siteFlags
	output string
	title  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show copied files and timing")
}

// addSiteFlags adds config override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name or path to an .html file")
	fs.StringVar(&f.assets, "assets", "", "custom assets directory")
	fs.StringVarP(&f.basePath, "base-path", "b", "", "URL prefix for root-relative links")
	fs.StringVarP(&f.engine, "engine", "e", "", "conversion engine: native, goldmark")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse parses args and reports flag errors as ErrUsage.
// flag.ErrHelp is returned unchanged.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", env.Stderr, func(w io.Writer) { printCommandHelp(w, env.width(), "build") })

	fs.StringVar(&f.content, "content", "", "markdown source directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.public, "public", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, env *Environment) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", env.Stderr, func(w io.Writer) { printCommandHelp(w, env.width(), "convert") })

	fs.StringVarP(&f.output, "output", "o", "", "output file (- for stdout)")
	fs.StringVar(&f.title, "title", "", "page title (default: first # heading)")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, env *Environment) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := newFlagSet("config", env.Stderr, func(w io.Writer) { printCommandHelp(w, env.width(), "config") })
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
