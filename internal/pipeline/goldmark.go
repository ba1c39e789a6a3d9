package pipeline

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// GoldmarkConverter is the CommonMark engine: GFM tables, strikethrough,
// autolinks and task lists, footnotes, heading ids, and chroma highlighting
// emitted as CSS classes for the site stylesheet.
// Raw HTML in the source is passed through, as the native engine does.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter.
func NewGoldmarkConverter() *GoldmarkConverter {
	return &GoldmarkConverter{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithXHTML(), html.WithUnsafe()),
	)}
}

// ToHTML renders content inside the same root element as the native engine.
// goldmark has no cancellation, so the conversion runs in a goroutine and
// ToHTML returns as soon as ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return awaitResult(ctx, func() (string, error) {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "<%s>", rootTag)
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		fmt.Fprintf(&buf, "</%s>", rootTag)
		return buf.String(), nil
	})
}

// awaitResult runs fn and returns its result, or ctx.Err() if ctx ends first.
func awaitResult(ctx context.Context, fn func() (string, error)) (string, error) {
	type outcome struct {
		s   string
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		s, err := fn()
		done <- outcome{s, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case o := <-done:
		return o.s, o.err
	}
}
