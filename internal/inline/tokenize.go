package inline

// delimiterPass is one delimiter split in the tokenizer sequence.
type delimiterPass struct {
	delimiter string
	style     Style
}

var delimiterPasses = []delimiterPass{
	{BoldDelimiter, Bold},
	{ItalicDelimiter, Italic},
	{StarItalicDelimiter, Italic},
	{CodeDelimiter, Code},
}

// Tokenize converts raw inline markdown into an ordered span sequence.
// Returns ErrMalformedInline if any delimiter or construct is unbalanced.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{NewSpan(text, Plain)}

	var err error
	for _, pass := range delimiterPasses {
		spans, err = SplitByDelimiter(spans, pass.delimiter, pass.style)
		if err != nil {
			return nil, err
		}
	}

	if spans, err = SplitImages(spans); err != nil {
		return nil, err
	}
	return SplitLinks(spans)
}
