// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidEngine   = errors.New("invalid engine")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrInvalidBasePath = errors.New("base path must start with / or http(s)://")
)

// EnvBasePath overrides Config.BasePath when set.
const EnvBasePath = "MD2HTML_BASEPATH"

// Engine names accepted in the engine field.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Limits for config fields.
const (
	MaxPathLength     = 4096
	MaxBasePathLength = 2048
	MaxNameLength     = 100
	MaxWorkers        = 64
)

// searchDir is the directory under os.UserConfigDir searched for named configs.
const searchDir = "go-md2html"

// Config describes one site build.
type Config struct {
	Content  string `yaml:"content"`  // markdown source tree
	Static   string `yaml:"static"`   // copied verbatim into Public
	Public   string `yaml:"public"`   // output tree, removed before each build
	Template string `yaml:"template"` // template name, or path to an .html file
	Assets   string `yaml:"assets"`   // custom assets directory (empty = embedded only)
	BasePath string `yaml:"basePath"` // URL prefix substituted for root-relative links
	Engine   string `yaml:"engine"`   // "native" or "goldmark"
	Workers  int    `yaml:"workers"`  // 0 = GOMAXPROCS
}

// DefaultConfig returns the layout used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:  "content",
		Static:   "static",
		Public:   "public",
		Template: "default",
		BasePath: "/",
		Engine:   EngineNative,
	}
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct{ name, value string }{
		{"content", c.Content},
		{"static", c.Static},
		{"public", c.Public},
		{"assets", c.Assets},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if fileutil.IsFilePath(c.Template) {
		if err := validateFieldLength("template", c.Template, MaxPathLength); err != nil {
			return err
		}
	} else if err := validateFieldLength("template", c.Template, MaxNameLength); err != nil {
		return err
	}

	if err := validateFieldLength("basePath", c.BasePath, MaxBasePathLength); err != nil {
		return err
	}
	if c.BasePath != "" && !hasBasePrefix(c.BasePath) {
		return fmt.Errorf("%w: %q", ErrInvalidBasePath, c.BasePath)
	}

	switch c.Engine {
	case "", EngineNative, EngineGoldmark:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, c.Engine, EngineNative, EngineGoldmark)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}

	return nil
}

func hasBasePrefix(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvBasePath); v != "" {
		c.BasePath = v
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg, yamlutil.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// current directory, then the user config directory, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, searchDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
