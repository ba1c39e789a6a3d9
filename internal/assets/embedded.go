package assets

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the built-in stylesheet called name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate returns the built-in page template called name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

// ListTemplates returns the names of the built-in templates.
func (e *EmbeddedLoader) ListTemplates() []string {
	return e.list(templateKind)
}

// ListStyles returns the names of the built-in stylesheets.
func (e *EmbeddedLoader) ListStyles() []string {
	return e.list(styleKind)
}

func (e *EmbeddedLoader) load(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := builtin.ReadFile(k.file(name))
	if err != nil {
		return "", k.missing(name)
	}
	return string(content), nil
}

func (e *EmbeddedLoader) list(k kind) []string {
	entries, err := fs.ReadDir(builtin, k.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), k.ext); ok {
			names = append(names, name)
		}
	}
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
