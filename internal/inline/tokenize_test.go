package inline

import (
	"errors"
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "simple bold",
			input: "a **b** c",
			want: []Span{
				NewSpan("a ", Plain),
				NewSpan("b", Bold),
				NewSpan(" c", Plain),
			},
		},
		{
			name:  "plain text",
			input: "Just plain text",
			want:  []Span{NewSpan("Just plain text", Plain)},
		},
		{
			name:  "every style",
			input: "This is **text** with an *italic* word and a `code block` and an ![obi wan image](https://i.imgur.com/fJRm4Vk.jpeg) and a [link](https://boot.dev)",
			want: []Span{
				NewSpan("This is ", Plain),
				NewSpan("text", Bold),
				NewSpan(" with an ", Plain),
				NewSpan("italic", Italic),
				NewSpan(" word and a ", Plain),
				NewSpan("code block", Code),
				NewSpan(" and an ", Plain),
				NewImageSpan("obi wan image", "https://i.imgur.com/fJRm4Vk.jpeg"),
				NewSpan(" and a ", Plain),
				NewLinkSpan("link", "https://boot.dev"),
			},
		},
		{
			name:  "underscore italic",
			input: "an _em_ word",
			want: []Span{
				NewSpan("an ", Plain),
				NewSpan("em", Italic),
				NewSpan(" word", Plain),
			},
		},
		{
			name:  "bold followed by code",
			input: "**b** `c`",
			want: []Span{
				NewSpan("b", Bold),
				NewSpan(" ", Plain),
				NewSpan("c", Code),
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for _, s := range got {
				if !s.Valid() {
					t.Errorf("span %v violates the target invariant", s)
				}
			}
		})
	}
}

func TestTokenize_Malformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"**unbalanced",
		"an _open italic",
		"stray `tick",
		"bad [link](nowhere",
		"bad ![image](nowhere",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			spans, err := Tokenize(input)
			if !errors.Is(err, ErrMalformedInline) {
				t.Errorf("Tokenize(%q) error = %v, want ErrMalformedInline", input, err)
			}
			if spans != nil {
				t.Errorf("Tokenize(%q) returned partial spans %v", input, spans)
			}
		})
	}
}

func BenchmarkTokenize(b *testing.B) {
	text := "This is **text** with an _italic_ word and a `code block` and an ![image](https://i.imgur.com/x.jpeg) and a [link](https://boot.dev)"
	for b.Loop() {
		if _, err := Tokenize(text); err != nil {
			b.Fatal(err)
		}
	}
}
