package pipeline

import (
	"errors"
	"testing"

	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
)

// renderDocument converts and renders md, failing the test on error.
func renderDocument(t *testing.T, md string) string {
	t.Helper()

	root, err := ToHTMLNode(md)
	if err != nil {
		t.Fatalf("ToHTMLNode: unexpected error: %v", err)
	}
	got, err := htmlnode.Render(root)
	if err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	return got
}

// ---------------------------------------------------------------------------
// TestToHTMLNode - Whole-document conversion
// ---------------------------------------------------------------------------

func TestToHTMLNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "paragraphs",
			md:   "\nThis is **bolded** paragraph\ntext in a p\ntag here\n\nThis is another paragraph with `code` here\n",
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p><p>This is another paragraph with <code>code</code> here</p></div>",
		},
		{
			name: "code block stays literal",
			md:   "```\nThis is text that _should_ remain\nthe **same** even with inline stuff\n```",
			want: "<div><pre><code>This is text that _should_ remain\nthe **same** even with inline stuff</code></pre></div>",
		},
		{
			name: "small code block",
			md:   "```\ncode\n```",
			want: "<div><pre><code>code</code></pre></div>",
		},
		{
			name: "fences on one line",
			md:   "```inline```",
			want: "<div><pre><code>inline</code></pre></div>",
		},
		{
			name: "code indentation kept",
			md:   "```\n  indented\n```",
			want: "<div><pre><code>  indented</code></pre></div>",
		},
		{
			name: "headings",
			md:   "# h1\n\n## h2\n\n### h3",
			want: "<div><h1>h1</h1><h2>h2</h2><h3>h3</h3></div>",
		},
		{
			name: "heading keeps inline styles",
			md:   "###### a **b**",
			want: "<div><h6>a <b>b</b></h6></div>",
		},
		{
			name: "blockquote",
			md:   "> This is a\n> blockquote",
			want: "<div><blockquote>This is a blockquote</blockquote></div>",
		},
		{
			name: "blockquote with inline styles",
			md:   "> This is **bold** and _italic_ inside a quote",
			want: "<div><blockquote>This is <b>bold</b> and <i>italic</i> inside a quote</blockquote></div>",
		},
		{
			name: "bare quote markers",
			md:   ">a\n>   b",
			want: "<div><blockquote>a b</blockquote></div>",
		},
		{
			name: "unordered list",
			md:   "- one\n- **two**\n- three",
			want: "<div><ul><li>one</li><li><b>two</b></li><li>three</li></ul></div>",
		},
		{
			name: "ordered list",
			md:   "1. first\n2. _second_\n3. third",
			want: "<div><ol><li>first</li><li><i>second</i></li><li>third</li></ol></div>",
		},
		{
			name: "numbering gap becomes paragraph",
			md:   "1. a\n3. b",
			want: "<div><p>1. a 3. b</p></div>",
		},
		{
			name: "links and images",
			md:   "Text with a [link](https://boot.dev) and an ![image](https://i.imgur.com)",
			want: `<div><p>Text with a <a href="https://boot.dev">link</a> and an <img src="https://i.imgur.com" alt="image"></img></p></div>`,
		},
		{
			name: "no escaping",
			md:   "1 < 2 & 3 > 2",
			want: "<div><p>1 < 2 & 3 > 2</p></div>",
		},
		{
			name: "crlf line endings",
			md:   "# t\r\n\r\nline one\r\nline two",
			want: "<div><h1>t</h1><p>line one line two</p></div>",
		},
		{
			name: "empty document",
			md:   "",
			want: "<div></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderDocument(t, tt.md); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestToHTMLNode_MalformedBlockAbortsDocument(t *testing.T) {
	t.Parallel()

	root, err := ToHTMLNode("# fine\n\nthis is **broken\n\nalso fine")
	if !errors.Is(err, inline.ErrMalformedInline) {
		t.Fatalf("error = %v, want ErrMalformedInline", err)
	}
	if root != nil {
		t.Errorf("expected no tree, got %#v", root)
	}
}

func TestToHTMLNode_RootShape(t *testing.T) {
	t.Parallel()

	root, err := ToHTMLNode("a\n\nb\n\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Tag != "div" {
		t.Errorf("root tag = %q, want div", root.Tag)
	}
	if len(root.Children) != 3 {
		t.Errorf("root has %d children, want 3", len(root.Children))
	}
}

// ---------------------------------------------------------------------------
// TestSpanToLeaf - Span to leaf mapping
// ---------------------------------------------------------------------------

func TestSpanToLeaf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span inline.Span
		want string
	}{
		{"plain", inline.NewSpan("text", inline.Plain), "text"},
		{"bold", inline.NewSpan("b", inline.Bold), "<b>b</b>"},
		{"italic", inline.NewSpan("i", inline.Italic), "<i>i</i>"},
		{"code", inline.NewSpan("c", inline.Code), "<code>c</code>"},
		{"link", inline.NewLinkSpan("go", "https://go.dev"), `<a href="https://go.dev">go</a>`},
		{"image", inline.NewImageSpan("alt", "/a.png"), `<img src="/a.png" alt="alt"></img>`},
		{"image without alt", inline.NewImageSpan("", "/a.png"), `<img src="/a.png" alt=""></img>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := htmlnode.Render(SpanToLeaf(tt.span))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlockToNode_EmptyCodeFailsAtRender(t *testing.T) {
	t.Parallel()

	node, err := BlockToNode("``````")
	if err != nil {
		t.Fatalf("BlockToNode: unexpected error: %v", err)
	}
	if _, err := htmlnode.Render(node); !errors.Is(err, htmlnode.ErrMissingValue) {
		t.Errorf("Render error = %v, want ErrMissingValue", err)
	}
}
