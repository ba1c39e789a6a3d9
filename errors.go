package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrUnknownEngine = errors.New("unknown engine")

	// Tokenizer errors.
	ErrMalformedInline = inline.ErrMalformedInline

	// Rendering errors.
	ErrMissingValue    = htmlnode.ErrMissingValue
	ErrMissingTag      = htmlnode.ErrMissingTag
	ErrMissingChildren = htmlnode.ErrMissingChildren

	// Page errors.
	ErrNoTitleFound           = pipeline.ErrNoTitleFound
	ErrHTMLConversion         = pipeline.ErrHTMLConversion
	ErrTemplateMissingContent = pipeline.ErrTemplateMissingContent
	ErrInvalidBasePath        = pipeline.ErrInvalidBasePath

	// Asset loading errors.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = assets.ErrInvalidBasePath
)
