// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the stages between raw markdown and a finished page:
//   - Markdown preprocessing (line ending normalization)
//   - Block-to-node conversion for the native engine
//   - An alternative CommonMark engine backed by Goldmark
//   - Title extraction and page template substitution
//   - Base path rewriting of root-relative links
//
// Tokenizing and block classification live in the inline and block
// packages; this package assembles their results into an htmlnode tree.
package pipeline
