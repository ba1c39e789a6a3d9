package main

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) (string, error) {
	flags, positional, err := parseConfigFlags(args, env)
	if err != nil {
		return "", err
	}
	if len(positional) > 0 {
		return flags.config, fmt.Errorf("%w: config takes no arguments, got %q", ErrUsage, positional)
	}

	cfg, err := loadConfig(flags.config, env)
	if err != nil {
		return flags.config, err
	}
	if err := cfg.Validate(); err != nil {
		return flags.config, err
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		return flags.config, fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return flags.config, err
}
