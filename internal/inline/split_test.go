package inline

import (
	"errors"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplitByDelimiter - Delimiter pass behavior
// ---------------------------------------------------------------------------

func TestSplitByDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []Span
		delimiter string
		style     Style
		want      []Span
	}{
		{
			name:      "bold word",
			input:     []Span{NewSpan("This is text with a **bolded** word", Plain)},
			delimiter: "**",
			style:     Bold,
			want: []Span{
				NewSpan("This is text with a ", Plain),
				NewSpan("bolded", Bold),
				NewSpan(" word", Plain),
			},
		},
		{
			name:      "two bold runs, trailing empty segment dropped",
			input:     []Span{NewSpan("This is **bold** and **more bold**", Plain)},
			delimiter: "**",
			style:     Bold,
			want: []Span{
				NewSpan("This is ", Plain),
				NewSpan("bold", Bold),
				NewSpan(" and ", Plain),
				NewSpan("more bold", Bold),
			},
		},
		{
			name:      "italic with underscore",
			input:     []Span{NewSpan("an _italic_ word", Plain)},
			delimiter: "_",
			style:     Italic,
			want: []Span{
				NewSpan("an ", Plain),
				NewSpan("italic", Italic),
				NewSpan(" word", Plain),
			},
		},
		{
			name:      "code span",
			input:     []Span{NewSpan("a `code block` word", Plain)},
			delimiter: "`",
			style:     Code,
			want: []Span{
				NewSpan("a ", Plain),
				NewSpan("code block", Code),
				NewSpan(" word", Plain),
			},
		},
		{
			name:      "styled spans pass through",
			input:     []Span{NewSpan("keep *this*", Bold), NewSpan("x *y*", Plain)},
			delimiter: "*",
			style:     Italic,
			want: []Span{
				NewSpan("keep *this*", Bold),
				NewSpan("x ", Plain),
				NewSpan("y", Italic),
			},
		},
		{
			name:      "no delimiter present",
			input:     []Span{NewSpan("plain", Plain)},
			delimiter: "**",
			style:     Bold,
			want:      []Span{NewSpan("plain", Plain)},
		},
		{
			name:      "whole span styled",
			input:     []Span{NewSpan("**all**", Plain)},
			delimiter: "**",
			style:     Bold,
			want:      []Span{NewSpan("all", Bold)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitByDelimiter(tt.input, tt.delimiter, tt.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitByDelimiter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitByDelimiter_Unbalanced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		delimiter string
	}{
		{"single bold opener", "**unbalanced", "**"},
		{"three code ticks", "a `b` `c", "`"},
		{"empty delimiter", "text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := SplitByDelimiter([]Span{NewSpan(tt.text, Plain)}, tt.delimiter, Bold)
			if !errors.Is(err, ErrMalformedInline) {
				t.Errorf("error = %v, want ErrMalformedInline", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtract - Image and link extraction
// ---------------------------------------------------------------------------

func TestExtractImages(t *testing.T) {
	t.Parallel()

	got, err := ExtractImages("This is text with an ![image](https://i.imgur.com/zjjcJKZ.png) and ![another](https://i.imgur.com)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Match{
		{Text: "image", Target: "https://i.imgur.com/zjjcJKZ.png"},
		{Text: "another", Target: "https://i.imgur.com"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractImages() = %v, want %v", got, want)
	}
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	got, err := ExtractLinks("a link [to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Match{
		{Text: "to boot dev", Target: "https://www.boot.dev"},
		{Text: "to youtube", Target: "https://www.youtube.com/@bootdotdev"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractLinks() = %v, want %v", got, want)
	}
}

func TestExtract_ImageLinkDisambiguation(t *testing.T) {
	t.Parallel()

	text := "This is a ![image](https://url.com/img.png) and a [link](https://url.com)"

	links, err := ExtractLinks(text)
	if err != nil {
		t.Fatalf("ExtractLinks: unexpected error: %v", err)
	}
	if want := []Match{{Text: "link", Target: "https://url.com"}}; !slices.Equal(links, want) {
		t.Errorf("ExtractLinks() = %v, want %v", links, want)
	}

	images, err := ExtractImages(text)
	if err != nil {
		t.Fatalf("ExtractImages: unexpected error: %v", err)
	}
	if want := []Match{{Text: "image", Target: "https://url.com/img.png"}}; !slices.Equal(images, want) {
		t.Errorf("ExtractImages() = %v, want %v", images, want)
	}
}

// ---------------------------------------------------------------------------
// TestSplitImages / TestSplitLinks - Pattern passes
// ---------------------------------------------------------------------------

func TestSplitImages(t *testing.T) {
	t.Parallel()

	input := []Span{NewSpan("This is text with an ![image](https://i.imgur.com/zjjcJKZ.png) and another ![second image](https://i.imgur.com/3elNhQu.png)", Plain)}
	got, err := SplitImages(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Span{
		NewSpan("This is text with an ", Plain),
		NewImageSpan("image", "https://i.imgur.com/zjjcJKZ.png"),
		NewSpan(" and another ", Plain),
		NewImageSpan("second image", "https://i.imgur.com/3elNhQu.png"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("SplitImages() = %v, want %v", got, want)
	}
}

func TestSplitLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "two links",
			input: "a link [to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev)",
			want: []Span{
				NewSpan("a link ", Plain),
				NewLinkSpan("to boot dev", "https://www.boot.dev"),
				NewSpan(" and ", Plain),
				NewLinkSpan("to youtube", "https://www.youtube.com/@bootdotdev"),
			},
		},
		{
			name:  "link at start",
			input: "[link](https://boot.dev) is at the start",
			want: []Span{
				NewLinkSpan("link", "https://boot.dev"),
				NewSpan(" is at the start", Plain),
			},
		},
		{
			name:  "adjacent links",
			input: "[a](x)[b](y)",
			want: []Span{
				NewLinkSpan("a", "x"),
				NewLinkSpan("b", "y"),
			},
		},
		{
			name:  "image syntax left alone",
			input: "see ![pic](p.png)",
			want:  []Span{NewSpan("see ![pic](p.png)", Plain)},
		},
		{
			name:  "bare brackets are text",
			input: "footnote [1] here",
			want:  []Span{NewSpan("footnote [1] here", Plain)},
		},
		{
			name:  "empty target is text",
			input: "see [x]() and [y](z)",
			want: []Span{
				NewSpan("see [x]() and ", Plain),
				NewLinkSpan("y", "z"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitLinks([]Span{NewSpan(tt.input, Plain)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitLinks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitByPattern_Unclosed(t *testing.T) {
	t.Parallel()

	if _, err := SplitLinks([]Span{NewSpan("broken [link](https://x.com", Plain)}); !errors.Is(err, ErrMalformedInline) {
		t.Errorf("SplitLinks error = %v, want ErrMalformedInline", err)
	}
	if _, err := SplitImages([]Span{NewSpan("broken ![img](x.png", Plain)}); !errors.Is(err, ErrMalformedInline) {
		t.Errorf("SplitImages error = %v, want ErrMalformedInline", err)
	}
}
