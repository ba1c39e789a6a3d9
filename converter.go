package md2html

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ AssetLoader                   = (*assets.AssetResolver)(nil)
)

// Converter turns Markdown documents into complete HTML pages.
// Create with NewConverter and reuse it; Convert is safe for concurrent use.
type Converter struct {
	engine        Engine
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	template      string
	basePath      string
}

// NewConverter creates a Converter. Without options it uses the native
// engine, the built-in template and a base path of "/".
// Returns error if the engine is unknown, the template cannot be loaded or
// lacks a content marker, or the base path is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := converterConfig{
		engine:       EngineNative,
		templateName: DefaultTemplate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Converter{
		engine:       cfg.engine,
		preprocessor: &pipeline.SourcePreprocessor{},
	}

	switch cfg.engine {
	case EngineNative:
		c.htmlConverter = &pipeline.NativeConverter{}
	case EngineGoldmark:
		c.htmlConverter = pipeline.NewGoldmarkConverter()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.engine)
	}

	tmpl := cfg.template
	if tmpl == "" {
		loader := cfg.loader
		if loader == nil {
			loader = assets.NewEmbeddedLoader()
		}
		var err error
		tmpl, err = loader.LoadTemplate(cfg.templateName)
		if err != nil {
			return nil, fmt.Errorf("loading template %q: %w", cfg.templateName, err)
		}
	}
	if err := pipeline.ValidateTemplate(tmpl); err != nil {
		return nil, err
	}
	c.template = tmpl

	basePath, err := pipeline.NormalizeBasePath(cfg.basePath)
	if err != nil {
		return nil, err
	}
	c.basePath = basePath

	return c, nil
}

// Engine returns the engine selected at construction.
func (c *Converter) Engine() Engine {
	return c.engine
}

// Convert runs the full pipeline: preprocessing, HTML conversion, title
// extraction, template substitution and base-path rewriting.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markdown := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)

	content, err := c.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := input.Title
	if title == "" {
		title, err = pipeline.ExtractTitle(markdown)
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := pipeline.RenderPage(c.template, title, content)
	if err != nil {
		return nil, err
	}

	page, err = pipeline.RewriteBasePath(page, c.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &Result{Title: title, Content: content, Page: page}, nil
}
