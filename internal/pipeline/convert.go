package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/block"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
)

// Root element wrapping every converted document.
const rootTag = "div"

// ToHTMLNode converts a markdown document into a root <div> with one child
// per block, in document order. Any block failure aborts the whole document.
func ToHTMLNode(document string) (*htmlnode.Composite, error) {
	blocks := block.ToBlocks(NormalizeLineEndings(document))

	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		node, err := BlockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		children = append(children, node)
	}

	return &htmlnode.Composite{Tag: rootTag, Children: children, AllowEmpty: true}, nil
}

// BlockToNode classifies b and builds its node subtree.
func BlockToNode(b string) (htmlnode.Node, error) {
	switch block.Classify(b) {
	case block.Heading:
		return headingToNode(b)
	case block.Code:
		return codeToNode(b), nil
	case block.Quote:
		return quoteToNode(b)
	case block.UnorderedList:
		return unorderedListToNode(b)
	case block.OrderedList:
		return orderedListToNode(b)
	default:
		return paragraphToNode(b)
	}
}

func paragraphToNode(b string) (htmlnode.Node, error) {
	text := strings.Join(strings.Split(b, "\n"), " ")
	return textToComposite("p", text)
}

func headingToNode(b string) (htmlnode.Node, error) {
	level := block.HeadingLevel(b)
	text := b[level+1:]
	return textToComposite(fmt.Sprintf("h%d", level), text)
}

// codeToNode strips the fences and at most one newline on each side.
// Code content bypasses the tokenizer.
func codeToNode(b string) htmlnode.Node {
	text := b[len(block.Fence) : len(b)-len(block.Fence)]
	text = strings.TrimPrefix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	code := htmlnode.NewLeaf("code", text)
	return htmlnode.NewComposite("pre", []htmlnode.Node{code})
}

func quoteToNode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped = append(stripped, strings.TrimSpace(strings.TrimPrefix(line, block.QuotePrefix)))
	}
	return textToComposite("blockquote", strings.Join(stripped, " "))
}

func unorderedListToNode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		items = append(items, line[len(block.UnorderedPrefix):])
	}
	return listToNode("ul", items)
}

// orderedListToNode cuts each line after its first space, dropping "N. ".
func orderedListToNode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		_, item, _ := strings.Cut(line, " ")
		items = append(items, item)
	}
	return listToNode("ol", items)
}

func listToNode(tag string, items []string) (htmlnode.Node, error) {
	children := make([]htmlnode.Node, 0, len(items))
	for _, item := range items {
		li, err := textToComposite("li", item)
		if err != nil {
			return nil, err
		}
		children = append(children, li)
	}
	return htmlnode.NewComposite(tag, children), nil
}

// textToComposite tokenizes text and wraps the resulting leaves in tag.
func textToComposite(tag, text string) (htmlnode.Node, error) {
	children, err := TextToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewComposite(tag, children), nil
}

// TextToChildren tokenizes inline markdown into leaf nodes.
func TextToChildren(text string) ([]htmlnode.Node, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}

	children := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		children = append(children, SpanToLeaf(span))
	}
	return children, nil
}

// SpanToLeaf converts a single span into its leaf node.
func SpanToLeaf(span inline.Span) *htmlnode.Leaf {
	switch span.Style {
	case inline.Bold:
		return htmlnode.NewLeaf("b", span.Content)
	case inline.Italic:
		return htmlnode.NewLeaf("i", span.Content)
	case inline.Code:
		return htmlnode.NewLeaf("code", span.Content)
	case inline.Link:
		return htmlnode.NewLeaf("a", span.Content, htmlnode.Attr("href", span.Target))
	case inline.Image:
		return &htmlnode.Leaf{
			Tag:        "img",
			Attrs:      htmlnode.Attributes{htmlnode.Attr("src", span.Target), htmlnode.Attr("alt", span.Content)},
			AllowEmpty: true,
		}
	default:
		return htmlnode.NewText(span.Content)
	}
}
