package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// loadConfig loads the config named by --config, or the defaults when unset,
// then applies environment overrides. Flags are merged by the caller.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	cfg.ApplyEnv(env.Getenv)
	return cfg, nil
}

// mergeSiteFlags copies set flag values into cfg (CLI wins).
func mergeSiteFlags(f *siteFlags, cfg *config.Config) {
	if f.template != "" {
		cfg.Template = f.template
	}
	if f.assets != "" {
		cfg.Assets = f.assets
	}
	if f.basePath != "" {
		cfg.BasePath = f.basePath
	}
	if f.engine != "" {
		cfg.Engine = f.engine
	}
}

// mergeBuildFlags copies set build flag values into cfg (CLI wins).
func mergeBuildFlags(f *buildFlags, cfg *config.Config) {
	mergeSiteFlags(&f.site, cfg)
	if f.content != "" {
		cfg.Content = f.content
	}
	if f.static != "" {
		cfg.Static = f.static
	}
	if f.public != "" {
		cfg.Public = f.public
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
}

// newConverter builds a converter from a validated config.
// A template containing a path separator is read from disk; otherwise it
// names a template resolved through loader.
func newConverter(cfg *config.Config, loader md2html.AssetLoader) (*md2html.Converter, error) {
	engine, err := md2html.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	opts := []md2html.Option{
		md2html.WithEngine(engine),
		md2html.WithBasePath(cfg.BasePath),
	}

	if fileutil.IsFilePath(cfg.Template) {
		content, err := os.ReadFile(cfg.Template) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		opts = append(opts, md2html.WithTemplate(string(content)))
	} else {
		opts = append(opts, md2html.WithAssetLoader(loader), md2html.WithTemplateName(cfg.Template))
	}

	return md2html.NewConverter(opts...)
}

// stylesheetName is the file the built-in template links to.
const stylesheetName = "index.css"

// ensureStylesheet writes the default stylesheet to public/index.css unless
// the static tree already provided one. It reports whether a file was written.
func ensureStylesheet(loader md2html.AssetLoader, public string) (bool, error) {
	path := filepath.Join(public, stylesheetName)
	if fileutil.FileExists(path) {
		return false, nil
	}
	css, err := loader.LoadStyle(md2html.DefaultStyle)
	if err != nil {
		return false, fmt.Errorf("loading stylesheet: %w", err)
	}
	if err := fileutil.WriteFile(path, css); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStaticCopy, err)
	}
	return true, nil
}

// checkLayout refuses a public directory that is, contains, or sits inside
// the content or static directory, since it is removed before each build.
func checkLayout(cfg *config.Config) error {
	public, err := filepath.Abs(cfg.Public)
	if err != nil {
		return err
	}
	for _, dir := range []string{cfg.Content, cfg.Static} {
		other, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		if within(public, other) || within(other, public) {
			return fmt.Errorf("%w: %s and %s", ErrOverlappingDirs, cfg.Public, dir)
		}
	}
	return nil
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
