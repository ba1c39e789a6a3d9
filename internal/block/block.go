// Package block splits a markdown document into blocks and classifies them.
package block

import (
	"regexp"
	"strconv"
	"strings"
)

// Type is the structural kind of a block.
type Type int

// Block types.
const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns the block type name.
func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Markers recognized by Classify.
const (
	Fence           = "```"
	QuotePrefix     = ">"
	UnorderedPrefix = "- "
	MaxHeadingLevel = 6
)

// blankLines matches one or more consecutive blank or whitespace-only lines.
var blankLines = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// ToBlocks splits document on blank lines, trims each block and drops empty ones.
func ToBlocks(document string) []string {
	parts := blankLines.Split(document, -1)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			blocks = append(blocks, part)
		}
	}
	return blocks
}

// Classify returns the type of block. The first matching rule wins and a
// rule that fails on any line degrades the whole block to Paragraph.
func Classify(block string) Type {
	if HeadingLevel(block) > 0 {
		return Heading
	}
	if isCode(block) {
		return Code
	}

	lines := strings.Split(block, "\n")
	switch {
	case strings.HasPrefix(lines[0], QuotePrefix):
		if allHavePrefix(lines, QuotePrefix) {
			return Quote
		}
		return Paragraph
	case strings.HasPrefix(lines[0], UnorderedPrefix):
		if allHavePrefix(lines, UnorderedPrefix) {
			return UnorderedList
		}
		return Paragraph
	case strings.HasPrefix(lines[0], "1. "):
		if isNumbered(lines) {
			return OrderedList
		}
		return Paragraph
	}
	return Paragraph
}

// HeadingLevel returns the number of leading '#' characters when block is a
// heading (1-6 followed by a space), or 0 otherwise.
func HeadingLevel(block string) int {
	level := 0
	for level < len(block) && block[level] == '#' {
		level++
	}
	if level == 0 || level > MaxHeadingLevel {
		return 0
	}
	if level >= len(block) || block[level] != ' ' {
		return 0
	}
	return level
}

func isCode(block string) bool {
	return len(block) >= 2*len(Fence) &&
		strings.HasPrefix(block, Fence) &&
		strings.HasSuffix(block, Fence)
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isNumbered reports whether line i (1-based) starts with "i. " for every line.
func isNumbered(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, OrderedPrefix(i+1)) {
			return false
		}
	}
	return true
}

// OrderedPrefix returns the list marker for item n, e.g. "3. ".
func OrderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}
