package md2html

import (
	"fmt"
	"strings"
)

// Engine selects the Markdown to HTML implementation.
type Engine string

// Supported engines.
const (
	// EngineNative uses the built-in block and inline rules. No escaping.
	EngineNative Engine = "native"

	// EngineGoldmark uses goldmark (CommonMark + GFM) with class-based
	// syntax highlighting.
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine maps a case-insensitive name to an Engine.
// An empty name selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(name)) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownEngine, name, EngineNative, EngineGoldmark)
	}
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // Page title (optional, default: first "# " heading)
}

// Result holds the outcome of a conversion.
type Result struct {
	Title   string // Page title substituted for {{ Title }}
	Content string // Rendered document fragment substituted for {{ Content }}
	Page    string // Complete page after base-path rewriting
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine       Engine
	templateName string
	template     string // inline template content, overrides templateName
	basePath     string
	loader       AssetLoader
}

// WithEngine selects the conversion engine.
func WithEngine(e Engine) Option {
	return func(c *converterConfig) {
		c.engine = e
	}
}

// WithTemplateName selects a template by name through the asset loader.
func WithTemplateName(name string) Option {
	return func(c *converterConfig) {
		c.templateName = name
	}
}

// WithTemplate sets the page template content directly.
// It must contain {{ Content }}; {{ Title }} is optional.
func WithTemplate(content string) Option {
	return func(c *converterConfig) {
		c.template = content
	}
}

// WithBasePath sets the prefix applied to root-relative links in pages.
func WithBasePath(basePath string) Option {
	return func(c *converterConfig) {
		c.basePath = basePath
	}
}

// WithAssetLoader sets a custom asset loader for template lookup by name.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *converterConfig) {
		c.loader = loader
	}
}
