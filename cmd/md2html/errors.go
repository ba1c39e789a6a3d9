package main

import (
	"errors"
	"fmt"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrNoPages          = errors.New("no markdown pages found")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrStaticCopy       = errors.New("failed to copy static files")
	ErrOverlappingDirs  = errors.New("public directory overlaps content or static directory")
	ErrBuildFailed      = errors.New("build failed")
)

// buildError reports the pages that failed during a build.
// errors.Is matches ErrBuildFailed and every page error.
type buildError struct {
	failed, total int
	errs          []error
}

func (e *buildError) Error() string {
	return fmt.Sprintf("%s: %d of %d pages failed", ErrBuildFailed, e.failed, e.total)
}

func (e *buildError) Unwrap() []error {
	return append([]error{ErrBuildFailed}, e.errs...)
}

// withHint appends an actionable hint to the error message when one applies.
// configName is the --config value, used to list searched locations.
func withHint(err error, configName string) string {
	msg := err.Error()
	if errors.Is(err, ErrBuildFailed) {
		return msg // page failures were already reported with their hints
	}
	return msg + hintFor(err, configName)
}

func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, md2html.ErrNoTitleFound):
		return hints.ForNoTitle()
	case errors.Is(err, md2html.ErrMalformedInline):
		return hints.ForMalformedInline()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, md2html.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(md2html.BuiltinTemplates())
	case errors.Is(err, md2html.ErrTemplateMissingContent):
		return hints.ForTemplateMissingContent()
	case errors.Is(err, config.ErrInvalidBasePath), errors.Is(err, md2html.ErrInvalidBasePath):
		return hints.ForInvalidBasePath()
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}
