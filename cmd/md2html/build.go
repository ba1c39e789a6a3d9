package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// runBuild generates the whole site: reset public, copy static, write the
// default stylesheet if static has none, convert every page under content.
func runBuild(ctx context.Context, args []string, env *Environment) (string, error) {
	flags, positional, err := parseBuildFlags(args, env)
	if err != nil {
		return "", err
	}
	if len(positional) > 0 {
		return flags.common.config, fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, positional)
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return flags.common.config, err
	}
	mergeBuildFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return flags.common.config, err
	}
	if err := checkLayout(cfg); err != nil {
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

	start := env.Now()
	if err := fileutil.ResetDir(cfg.Public); err != nil {
		return flags.common.config, err
	}

	if fileutil.DirExists(cfg.Static) {
		var logf fileutil.Logf
		if flags.common.verbose {
			logf = func(format string, args ...any) {
				fmt.Fprintf(env.Stdout, format+"\n", args...)
			}
		}
		if err := fileutil.CopyDir(cfg.Static, cfg.Public, logf); err != nil {
			return flags.common.config, fmt.Errorf("%w: %v", ErrStaticCopy, err)
		}
	} else if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "No static directory at %s, skipping copy\n", cfg.Static)
	}

	wrote, err := ensureStylesheet(loader, cfg.Public)
	if err != nil {
		return flags.common.config, err
	}
	if wrote && flags.common.verbose {
		fmt.Fprintf(env.Stdout, " * %s -> %s\n", md2html.DefaultStyle+".css", filepath.Join(cfg.Public, stylesheetName))
	}

	pages, err := discoverPages(cfg.Content, cfg.Public)
	if err != nil {
		return flags.common.config, err
	}
	if len(pages) == 0 {
		return flags.common.config, fmt.Errorf("%w in %s", ErrNoPages, cfg.Content)
	}

	workers := md2html.ResolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Converting %d pages with %d workers (%s engine)\n", len(pages), workers, cfg.Engine)
	}

	results := convertBatch(ctx, conv, pages, workers)
	summary := printResults(results, flags.common.quiet, flags.common.verbose, env)

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Built %s in %v\n", cfg.Public, env.Now().Sub(start).Round(time.Millisecond))
	}

	if summary.Failed > 0 {
		return flags.common.config, &buildError{
			failed: summary.Failed,
			total:  len(results),
			errs:   pageErrors(results),
		}
	}
	return flags.common.config, nil
}
