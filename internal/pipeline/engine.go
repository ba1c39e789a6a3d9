package pipeline

import (
	"context"
	"errors"

	"github.com/alnah/go-md2html/internal/htmlnode"
)

// ErrHTMLConversion indicates the goldmark engine failed on a document.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter turns a preprocessed document into a <div> fragment.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NativeConverter applies the block and inline rules of this package.
// Content is not escaped.
type NativeConverter struct{}

// ToHTML builds the node tree for content and renders it.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := ToHTMLNode(content)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}
