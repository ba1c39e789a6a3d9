package inline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInline indicates an unbalanced delimiter or an image/link
// construct that opens without a matching close.
var ErrMalformedInline = errors.New("malformed inline syntax")

// Delimiters in the order Tokenize applies them.
const (
	BoldDelimiter       = "**"
	ItalicDelimiter     = "_"
	StarItalicDelimiter = "*"
	CodeDelimiter       = "`"
)

// SplitByDelimiter splits every plain span on delimiter. Segments at odd
// positions get style, the rest stay plain, empty segments are dropped.
// Returns ErrMalformedInline if a plain span holds an unmatched delimiter.
func SplitByDelimiter(spans []Span, delimiter string, style Style) ([]Span, error) {
	if delimiter == "" {
		return nil, fmt.Errorf("%w: empty delimiter", ErrMalformedInline)
	}

	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Style != Plain {
			out = append(out, span)
			continue
		}

		sections := strings.Split(span.Content, delimiter)
		if len(sections)%2 == 0 {
			return nil, fmt.Errorf("%w: unmatched %q in %q", ErrMalformedInline, delimiter, span.Content)
		}

		for i, section := range sections {
			if section == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, NewSpan(section, Plain))
			} else {
				out = append(out, Span{Content: section, Style: style})
			}
		}
	}
	return out, nil
}

// SplitImages extracts ![alt](src) constructs from plain spans.
func SplitImages(spans []Span) ([]Span, error) {
	return splitByPattern(spans, Image)
}

// SplitLinks extracts [text](href) constructs from plain spans.
// Image syntax is never matched as a link.
func SplitLinks(spans []Span) ([]Span, error) {
	return splitByPattern(spans, Link)
}

func splitByPattern(spans []Span, kind Style) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Style != Plain {
			out = append(out, span)
			continue
		}

		text := span.Content
		for {
			m, ok, err := nextMatch(text, kind)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			if m.start > 0 {
				out = append(out, NewSpan(text[:m.start], Plain))
			}
			out = append(out, Span{Content: m.Text, Style: kind, Target: m.Target})
			text = text[m.end:]
		}
		if text != "" {
			out = append(out, NewSpan(text, Plain))
		}
	}
	return out, nil
}

// Match is one extracted image or link construct.
type Match struct {
	Text   string // alt text for images, anchor text for links
	Target string

	start, end int
}

// ExtractImages returns every image construct in text, in order.
func ExtractImages(text string) ([]Match, error) {
	return extractAll(text, Image)
}

// ExtractLinks returns every link construct in text, in order.
// Image constructs are skipped.
func ExtractLinks(text string) ([]Match, error) {
	return extractAll(text, Link)
}

func extractAll(text string, kind Style) ([]Match, error) {
	var matches []Match
	offset := 0
	for {
		m, ok, err := nextMatch(text[offset:], kind)
		if err != nil {
			return nil, err
		}
		if !ok {
			return matches, nil
		}
		matches = append(matches, Match{Text: m.Text, Target: m.Target})
		offset += m.end
	}
}

// nextMatch finds the leftmost construct of kind in text. The text part ends
// at the first "](" after the opening bracket and the target at the next ")".
// A construct that reaches "](" without a closing ")" is malformed.
func nextMatch(text string, kind Style) (Match, bool, error) {
	from := 0
	for from < len(text) {
		rel := strings.IndexByte(text[from:], '[')
		if rel < 0 {
			return Match{}, false, nil
		}
		open := from + rel
		from = open + 1

		bang := open > 0 && text[open-1] == '!'
		if kind == Image && !bang || kind == Link && bang {
			continue
		}

		mid := strings.Index(text[open+1:], "](")
		if mid < 0 {
			continue
		}
		mid += open + 1

		closeRel := strings.IndexByte(text[mid+2:], ')')
		if closeRel < 0 {
			return Match{}, false, fmt.Errorf("%w: unclosed %s in %q", ErrMalformedInline, kind, text[open:])
		}
		closeIdx := mid + 2 + closeRel

		target := text[mid+2 : closeIdx]
		if target == "" {
			continue
		}

		start := open
		if kind == Image {
			start--
		}
		return Match{
			Text:   text[open+1 : mid],
			Target: target,
			start:  start,
			end:    closeIdx + 1,
		}, true, nil
	}
	return Match{}, false, nil
}
