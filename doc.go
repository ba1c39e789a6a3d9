// Package md2html converts Markdown documents to HTML.
//
// # Quick Start
//
// Convert a document to an HTML node tree and render it:
//
//	root, err := md2html.ToHTML("# Hello\n\nThis is **bold**.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	markup, err := md2html.Render(root)
//	// <div><h1>Hello</h1><p>This is <b>bold</b>.</p></div>
//
// # Conversion Pipeline
//
// The native engine follows these stages:
//
//  1. Split the document on blank lines into blocks
//  2. Classify each block (heading, code, quote, lists, paragraph)
//  3. Tokenize block text into spans (bold, italic, code, images, links)
//  4. Convert spans to leaf nodes and blocks to composite nodes
//  5. Wrap everything in a single <div> root
//
// Content is not HTML-escaped: markup inside the source reaches the output
// as written.
//
// # Pages
//
// A Converter goes one step further and produces a full page from a
// template containing {{ Title }} and {{ Content }} markers:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithEngine(md2html.EngineGoldmark),
//	    md2html.WithBasePath("/docs/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
//	os.WriteFile("index.html", []byte(result.Page), 0644)
//
// The title is the first level-1 heading of the document. With a base path
// other than "/", root-relative href and src values in the page are
// prefixed with it.
//
// A Converter holds no mutable state after construction and is safe for
// concurrent use.
//
// # Error Handling
//
// Sentinel errors are exported for use with errors.Is:
//
//	_, err := md2html.ToHTML("an **unclosed bold")
//	if errors.Is(err, md2html.ErrMalformedInline) {
//	    // unbalanced delimiter or unclosed link
//	}
package md2html
