// Package htmlnode models the HTML output tree and renders it to markup.
//
// A tree is built bottom-up from Leaf and Composite nodes and rendered once.
// Rendering never escapes content: values and attribute values are emitted
// verbatim.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for render-time invariant violations.
var (
	ErrMissingValue    = errors.New("leaf node has no value")
	ErrMissingTag      = errors.New("composite node has no tag")
	ErrMissingChildren = errors.New("composite node has no children")
)

// Node is an HTML tree node. It is implemented only by *Leaf and *Composite.
type Node interface {
	node()
}

// Attribute is a single key="value" pair.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute list, serialized in insertion order.
type Attributes []Attribute

// Attr is shorthand for a single Attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Leaf is a terminal node. An empty Tag renders Value as raw text.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes

	// AllowEmpty permits an empty Value, as for <img>.
	AllowEmpty bool
}

// Composite is a tagged node whose content is its children.
type Composite struct {
	Tag      string
	Children []Node
	Attrs    Attributes

	// AllowEmpty permits rendering with no children, as for an empty document root.
	AllowEmpty bool
}

func (*Leaf) node()      {}
func (*Composite) node() {}

// NewText returns an untagged leaf holding raw text.
func NewText(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewLeaf returns a tagged leaf.
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// NewComposite returns a composite owning children.
func NewComposite(tag string, children []Node, attrs ...Attribute) *Composite {
	return &Composite{Tag: tag, Children: children, Attrs: attrs}
}

// Render serializes node and its descendants to markup.
func Render(node Node) (string, error) {
	var sb strings.Builder
	if err := render(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(sb *strings.Builder, node Node) error {
	switch n := node.(type) {
	case *Leaf:
		if n == nil {
			return fmt.Errorf("%w: nil leaf", ErrMissingValue)
		}
		if n.Value == "" && !n.AllowEmpty {
			return fmt.Errorf("%w: <%s>", ErrMissingValue, n.Tag)
		}
		if n.Tag == "" {
			sb.WriteString(n.Value)
			return nil
		}
		openTag(sb, n.Tag, n.Attrs)
		sb.WriteString(n.Value)
		closeTag(sb, n.Tag)
		return nil

	case *Composite:
		if n == nil {
			return fmt.Errorf("%w: nil composite", ErrMissingTag)
		}
		if n.Tag == "" {
			return ErrMissingTag
		}
		if len(n.Children) == 0 && !n.AllowEmpty {
			return fmt.Errorf("%w: <%s>", ErrMissingChildren, n.Tag)
		}
		openTag(sb, n.Tag, n.Attrs)
		for _, child := range n.Children {
			if err := render(sb, child); err != nil {
				return err
			}
		}
		closeTag(sb, n.Tag)
		return nil

	case nil:
		return fmt.Errorf("%w: nil node", ErrMissingValue)

	default:
		panic(fmt.Sprintf("htmlnode: unexpected node type %T", node))
	}
}

func openTag(sb *strings.Builder, tag string, attrs Attributes) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	writeAttrs(sb, attrs)
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// writeAttrs serializes attrs as ` key="value"` pairs.
func writeAttrs(sb *strings.Builder, attrs Attributes) {
	for _, attr := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
}
