// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// Getenv reads environment variables; replaced in tests.
var Getenv = os.Getenv

// ForNoTitle returns a hint for pages without a level-1 heading.
func ForNoTitle() string {
	return format(`start the page with a "# Title" line; "#Title" without a space is not a heading`)
}

// ForMalformedInline returns a hint for unbalanced inline delimiters.
func ForMalformedInline() string {
	return format("check for an unclosed **, _, *, ` or a [link]( missing its closing )")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and the user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := filepath.Join("", "go-md2html") + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound lists the built-in templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass --template ./path/to/template.html")
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to an .html file")
}

// ForTemplateMissingContent explains the required marker.
func ForTemplateMissingContent() string {
	return format("the template must contain {{ Content }}")
}

// ForInvalidBasePath mentions the environment override when it is the source.
func ForInvalidBasePath() string {
	if v := Getenv("MD2HTML_BASEPATH"); v != "" {
		return format("MD2HTML_BASEPATH is set to " + v + "; base paths must start with / or http(s)://")
	}
	return format("base paths must start with / or http(s)://, e.g. --base-path /docs/")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
