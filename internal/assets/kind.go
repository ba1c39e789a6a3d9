package assets

import (
	"errors"
	"fmt"
)

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound    = errors.New("stylesheet not found")
	ErrTemplateNotFound = errors.New("page template not found")

	// ErrInvalidAssetName rejects names that are not a bare identifier,
	// such as "default.html" or "../default".
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the assets directory is missing or not a directory.
	ErrInvalidBasePath = errors.New("invalid assets directory")

	ErrAssetRead     = errors.New("failed to read asset")
	ErrPathTraversal = errors.New("asset path escapes the assets directory")
)

// MaxNameLength bounds asset names.
const MaxNameLength = 64

// kind locates one class of asset below an asset root.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name relative to the asset root.
func (k kind) file(name string) string {
	return k.dir + "/" + name + k.ext
}

// missing reports name as not found for this kind.
func (k kind) missing(name string) error {
	return fmt.Errorf("%w: %q", k.notFound, name)
}

// ValidateAssetName accepts names made of ASCII letters, digits, '-' and '_'.
// Anything else, including dots and separators, is ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, MaxNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

// isNotFound reports whether err means the asset is absent, as opposed to
// invalid or unreadable.
func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
