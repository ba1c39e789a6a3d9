package pipeline

import (
	"errors"
	"strings"
)

// ErrNoTitleFound indicates the document has no top-level heading.
var ErrNoTitleFound = errors.New("no h1 header found in markdown")

// titlePrefix marks a top-level heading line.
const titlePrefix = "# "

// ExtractTitle returns the trimmed text of the first line starting with "# ".
func ExtractTitle(document string) (string, error) {
	for _, line := range strings.Split(NormalizeLineEndings(document), "\n") {
		if title, ok := strings.CutPrefix(line, titlePrefix); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", ErrNoTitleFound
}
