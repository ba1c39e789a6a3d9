package md2html

import (
	"github.com/alnah/go-md2html/internal/block"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Span is a run of inline text with a single style.
type Span = inline.Span

// Style is the inline style of a Span.
type Style = inline.Style

// Inline styles.
const (
	StylePlain  = inline.Plain
	StyleBold   = inline.Bold
	StyleItalic = inline.Italic
	StyleCode   = inline.Code
	StyleLink   = inline.Link
	StyleImage  = inline.Image
)

// BlockType is the structural kind of a markdown block.
type BlockType = block.Type

// Block types.
const (
	BlockParagraph     = block.Paragraph
	BlockHeading       = block.Heading
	BlockCode          = block.Code
	BlockQuote         = block.Quote
	BlockUnorderedList = block.UnorderedList
	BlockOrderedList   = block.OrderedList
)

// Node is an HTML node: either a *Leaf or a *Composite.
type Node = htmlnode.Node

// Leaf is an HTML node holding text.
type Leaf = htmlnode.Leaf

// Composite is an HTML node holding children.
type Composite = htmlnode.Composite

// Attribute is an HTML attribute; order is preserved on output.
type Attribute = htmlnode.Attribute

// ToHTML converts a markdown document into a tree rooted at a <div>.
// Line endings are normalized first. Any malformed block aborts the
// conversion; no partial tree is returned.
func ToHTML(document string) (*Composite, error) {
	return pipeline.ToHTMLNode(document)
}

// Render serializes node to HTML markup.
func Render(node Node) (string, error) {
	return htmlnode.Render(node)
}

// ExtractTitle returns the trimmed text of the first "# " line.
// Returns ErrNoTitleFound if there is none.
func ExtractTitle(document string) (string, error) {
	return pipeline.ExtractTitle(document)
}

// Tokenize splits text into styled spans.
func Tokenize(text string) ([]Span, error) {
	return inline.Tokenize(text)
}

// Blocks splits document into trimmed, non-empty blocks.
func Blocks(document string) []string {
	return block.ToBlocks(pipeline.NormalizeLineEndings(document))
}

// Classify returns the type of a single block.
func Classify(b string) BlockType {
	return block.Classify(b)
}
