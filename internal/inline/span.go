// Package inline tokenizes inline markdown into styled text spans.
//
// Tokenize applies a fixed sequence of passes to a single plain span:
// bold, italic, code, images, links. Each pass only splits spans that are
// still plain, so styled content is never re-split.
package inline

import "fmt"

// Style identifies how a span's content is presented.
type Style int

// Span styles.
const (
	Plain Style = iota
	Bold
	Italic
	Code
	Link
	Image
)

// String returns the lower-case style name.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// HasTarget reports whether spans of this style carry a target URL.
func (s Style) HasTarget() bool {
	return s == Link || s == Image
}

// Span is the smallest unit of inline content. Spans are comparable values.
type Span struct {
	Content string
	Style   Style
	Target  string // link href or image src; set only for Link and Image
}

// NewSpan returns a span without a target.
// Panics if style requires a target (programmer error).
func NewSpan(content string, style Style) Span {
	if style.HasTarget() {
		panic("inline: NewSpan called with " + style.String() + " style, use NewLinkSpan or NewImageSpan")
	}
	return Span{Content: content, Style: style}
}

// NewLinkSpan returns a link span pointing at target.
func NewLinkSpan(text, target string) Span {
	return Span{Content: text, Style: Link, Target: target}
}

// NewImageSpan returns an image span with alt text and source target.
func NewImageSpan(alt, target string) Span {
	return Span{Content: alt, Style: Image, Target: target}
}

// Valid reports whether the target is present exactly when the style needs one.
func (s Span) Valid() bool {
	return s.Style.HasTarget() == (s.Target != "")
}

func (s Span) String() string {
	if s.Style.HasTarget() {
		return fmt.Sprintf("%s(%q, %q)", s.Style, s.Content, s.Target)
	}
	return fmt.Sprintf("%s(%q)", s.Style, s.Content)
}
