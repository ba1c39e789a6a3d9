package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// markdownExt is the extension of discovered pages.
const markdownExt = ".md"

// Page represents a single file to process.
type Page struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds every .md file below contentDir and maps it to the
// mirrored .html path below publicDir, in lexical order.
func discoverPages(contentDir, publicDir string) ([]Page, error) {
	if !fileutil.DirExists(contentDir) {
		return nil, fmt.Errorf("%w: content directory %s", ErrNoInput, contentDir)
	}

	var pages []Page
	err := fileutil.Walk(contentDir, markdownExt, func(rel string) error {
		out, err := fileutil.ReplaceExt(filepath.Join(publicDir, rel), "html")
		if err != nil {
			return err
		}
		pages = append(pages, Page{
			InputPath:  filepath.Join(contentDir, rel),
			OutputPath: out,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", contentDir, err)
	}
	return pages, nil
}

// validateMarkdownExtension checks that path has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
}

// defaultOutputPath returns path with its extension replaced by .html.
func defaultOutputPath(path string) string {
	out, err := fileutil.ReplaceExt(path, "html")
	if err != nil {
		return path + ".html"
	}
	return out
}
