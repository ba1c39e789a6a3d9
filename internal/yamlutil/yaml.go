// Package yamlutil decodes and encodes the YAML site configuration.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DefaultMaxSize bounds the input accepted by Decode (1MB).
const DefaultMaxSize = 1 << 20

var (
	ErrEmptyInput  = errors.New("yamlutil: nil or empty data")
	ErrNilTarget   = errors.New("yamlutil: nil destination pointer")
	ErrInputTooBig = errors.New("yamlutil: input exceeds maximum size")
)

type options struct {
	strict  bool
	maxSize int
}

// Option configures Decode.
type Option func(*options)

// Strict rejects keys that do not map to a field of the destination.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// MaxSize overrides DefaultMaxSize.
func MaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

// Decode parses data into v.
func Decode(data []byte, v any, opts ...Option) error {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > o.maxSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooBig, len(data), o.maxSize)
	case v == nil:
		return ErrNilTarget
	}

	var decodeOpts []yaml.DecodeOption
	if o.strict {
		decodeOpts = append(decodeOpts, yaml.Strict())
	}
	if err := yaml.UnmarshalWithOptions(data, v, decodeOpts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode serializes v with two-space indentation and indented sequences.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
