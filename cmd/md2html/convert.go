package main

import (
	"context"
	"fmt"
	"time"

	md2html "github.com/alnah/go-md2html"
)

// stdoutPath selects standard output for --output.
const stdoutPath = "-"

// runConvert converts a single markdown file to a page.
func runConvert(ctx context.Context, args []string, env *Environment) (string, error) {
	flags, positional, err := parseConvertFlags(args, env)
	if err != nil {
		return "", err
	}

	switch len(positional) {
	case 0:
		return flags.common.config, fmt.Errorf("%w: convert needs a markdown file", ErrNoInput)
	case 1:
	default:
		return flags.common.config, fmt.Errorf("%w: convert takes one file, got %d", ErrUsage, len(positional))
	}

	input := positional[0]
	if err := validateMarkdownExtension(input); err != nil {
		return flags.common.config, err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return flags.common.config, err
	}
	mergeSiteFlags(&flags.site, cfg)
	if err := cfg.Validate(); err != nil {
		return flags.common.config, err
	}

	loader, err := md2html.NewAssetLoader(cfg.Assets)
	if err != nil {
		return flags.common.config, err
	}
	conv, err := newConverter(cfg, loader)
	if err != nil {
		return flags.common.config, err
	}

	if flags.output == stdoutPath {
		return flags.common.config, convertToStdout(ctx, conv, input, flags.title, env)
	}

	output := flags.output
	if output == "" {
		output = defaultOutputPath(input)
	}

	r := convertPage(ctx, conv, Page{InputPath: input, OutputPath: output}, flags.title)
	if r.Err != nil {
		return flags.common.config, r.Err
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stdout, "%s -> %s %q (%v)\n", r.InputPath, r.OutputPath, r.Title, r.Duration.Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
	}
	return flags.common.config, nil
}

// convertToStdout writes the generated page to env.Stdout.
func convertToStdout(ctx context.Context, conv PageConverter, input, title string, env *Environment) error {
	content, err := readMarkdown(input)
	if err != nil {
		return err
	}
	res, err := conv.Convert(ctx, md2html.Input{Markdown: content, Title: title})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(env.Stdout, res.Page)
	return err
}
