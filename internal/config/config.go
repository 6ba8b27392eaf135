// Package config loads size limit files for the bytesize CLI.
//
// A limits file is YAML (.yaml, .yml) or TOML (.toml):
//
//	format: json
//	human: true
//	limits:
//	  upload: 5M
//	  cache: 1g
//
// Every limit must be a strict size literal; bare numbers are byte counts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hailam/bytesize/pkg/size"
)

// Output formats accepted in the format key.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrPathEmpty     = errors.New("config path is empty")
	ErrFileEmpty     = errors.New("config file is empty")
	ErrUnsupported   = errors.New("unsupported config file extension")
	ErrInvalidFormat = errors.New("invalid output format")
)

// Config is a loaded limits file.
type Config struct {
	Format string
	Human  bool
	Limits map[string]size.Size
}

// Limit returns the named limit.
func (c *Config) Limit(name string) (size.Size, bool) {
	v, ok := c.Limits[name]
	return v, ok
}

// literal keeps the raw scalar text so that integers and strings are
// accepted alike and parsed with the key name in the error.
type literal string

func (l *literal) UnmarshalText(text []byte) error {
	*l = literal(text)
	return nil
}

type fileConfig struct {
	Format string             `yaml:"format" toml:"format"`
	Human  bool               `yaml:"human" toml:"human"`
	Limits map[string]literal `yaml:"limits" toml:"limits"`
}

// Load reads and validates the limits file at path.
func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrPathEmpty
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileEmpty, path)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return fc.resolve()
}

func (fc *fileConfig) resolve() (*Config, error) {
	cfg := &Config{
		Format: strings.ToLower(fc.Format),
		Human:  fc.Human,
		Limits: make(map[string]size.Size, len(fc.Limits)),
	}
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, fc.Format)
	}
	for name, raw := range fc.Limits {
		v, err := size.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("limit '%s': %w", name, err)
		}
		cfg.Limits[name] = v
	}
	return cfg, nil
}
