package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/renderers/text"
)

const (
	// DefaultPath is read when no explicit config path is supplied.
	DefaultPath = ".ctxgen.yaml"
	// DefaultEnvFile is loaded into the process environment when present.
	DefaultEnvFile = ".env"

	EnvFormat       = "CTXGEN_FORMAT"
	EnvKind         = "CTXGEN_KIND"
	EnvOutputDir    = "CTXGEN_OUTPUT_DIR"
	EnvClipboard    = "CTXGEN_CLIPBOARD"
	EnvThemeVariant = "CTXGEN_THEME_VARIANT"
	EnvTemplates    = "CTXGEN_TEMPLATES"
)

// Config holds the user facing defaults of the CLI.
type Config struct {
	Format       string `yaml:"format"`
	Kind         string `yaml:"kind"`
	OutputDir    string `yaml:"output_dir"`
	Clipboard    bool   `yaml:"clipboard"`
	ThemeVariant string `yaml:"theme_variant"`
	// Templates points at an OpenAPI document that replaces the built-in catalog.
	Templates string `yaml:"templates"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Format:    string(text.FormatPlain),
		OutputDir: ".",
	}
}

// Option customises Load.
type Option func(*loader)

type loader struct {
	envFile   string
	lookupEnv func(string) (string, bool)
}

// WithEnvFile overrides the .env file location. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(l *loader) {
		l.envFile = path
	}
}

// WithLookupEnv replaces os.LookupEnv, mainly for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(l *loader) {
		if fn != nil {
			l.lookupEnv = fn
		}
	}
}

// Load reads path (or DefaultPath when empty), applies environment overrides
// and validates the result. A missing DefaultPath is not an error; a missing
// explicit path is.
func Load(path string, opts ...Option) (Config, error) {
	l := &loader{
		envFile:   DefaultEnvFile,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(data); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", l.envFile, err)
		}
	}

	if err := cfg.applyEnv(l.lookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of Default and normalises it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.normalise()
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvFormat); ok {
		c.Format = value
	}
	if value, ok := lookup(EnvKind); ok {
		c.Kind = value
	}
	if value, ok := lookup(EnvOutputDir); ok {
		c.OutputDir = value
	}
	if value, ok := lookup(EnvThemeVariant); ok {
		c.ThemeVariant = value
	}
	if value, ok := lookup(EnvTemplates); ok {
		c.Templates = value
	}
	if value, ok := lookup(EnvClipboard); ok && strings.TrimSpace(value) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvClipboard, value)
		}
		c.Clipboard = enabled
	}
	c.normalise()
	return nil
}

func (c *Config) normalise() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = string(text.FormatPlain)
	}
	c.Kind = strings.TrimSpace(c.Kind)
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.ThemeVariant = strings.ToLower(strings.TrimSpace(c.ThemeVariant))
	c.Templates = strings.TrimSpace(c.Templates)
}

// Validate checks the format and, when the built-in catalog is in use, the
// default kind.
func (c Config) Validate() error {
	known := false
	for _, format := range text.Formats() {
		if string(format) == c.Format {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	if c.Kind != "" && c.Templates == "" {
		if _, err := catalog.Default().ParseKind(c.Kind); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
