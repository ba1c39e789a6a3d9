package md2html

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/assets"
)

// Names of the built-in assets.
const (
	DefaultTemplate = assets.DefaultTemplateName
	DefaultStyle    = assets.DefaultStyleName
)

// AssetLoader loads page templates and stylesheets by name.
// Implementations may load from filesystem, embedded assets, a database, etc.
type AssetLoader interface {
	// LoadTemplate returns the template called name (without extension).
	// Returns ErrTemplateNotFound if it doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadStyle returns the stylesheet called name (without extension).
	// Returns ErrStyleNotFound if it doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given directory.
// If basePath is empty, only embedded assets are used. Otherwise
// {basePath}/templates/{name}.html and {basePath}/styles/{name}.css take
// precedence over the embedded ones.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}

// BuiltinTemplates lists the names of the embedded templates.
func BuiltinTemplates() []string {
	return assets.NewEmbeddedLoader().ListTemplates()
}
