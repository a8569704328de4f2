// Package config loads elfmt settings from .elfmt.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/elfmt/format"
)

const (
	FileName = ".elfmt.yaml"
	EnvVar   = "ELFMT_CONFIG"
)

// Config is the contents of a configuration file. Patterns left empty keep
// their defaults.
type Config struct {
	Verbosity int            `yaml:"verbosity"`
	Patterns  PatternsConfig `yaml:"patterns"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

type PatternsConfig struct {
	Class       string `yaml:"class"`
	Interface   string `yaml:"interface"`
	Enum        string `yaml:"enum"`
	Annotation  string `yaml:"annotation"`
	Record      string `yaml:"record"`
	Field       string `yaml:"field"`
	Method      string `yaml:"method"`
	Constructor string `yaml:"constructor"`
	Initializer string `yaml:"initializer"`
}

func Default() *Config {
	return &Config{
		Patterns: PatternsConfig{
			Class:       format.DefaultClassPattern,
			Interface:   format.DefaultInterfacePattern,
			Enum:        format.DefaultEnumPattern,
			Annotation:  format.DefaultAnnotationPattern,
			Record:      format.DefaultRecordPattern,
			Field:       format.DefaultFieldPattern,
			Method:      format.DefaultMethodPattern,
			Constructor: format.DefaultConstructorPattern,
			Initializer: format.DefaultInitializerPattern,
		},
	}
}

// Load reads the configuration at path. With an empty path the file is
// looked up in $ELFMT_CONFIG, ./.elfmt.yaml and the user config directory;
// if none exists the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = find()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func find() string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}
	if exists(FileName) {
		return FileName
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" && dir != "/" {
		path := filepath.Join(dir, "elfmt", "config.yaml")
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Compile turns the configured patterns into formatters. The error names
// the offending key.
func (c *Config) Compile() (format.Patterns, error) {
	var p format.Patterns
	entries := []struct {
		key     string
		pattern string
		dst     **format.Formatter
	}{
		{"class", c.Patterns.Class, &p.Class},
		{"interface", c.Patterns.Interface, &p.Interface},
		{"enum", c.Patterns.Enum, &p.Enum},
		{"annotation", c.Patterns.Annotation, &p.Annotation},
		{"record", c.Patterns.Record, &p.Record},
		{"field", c.Patterns.Field, &p.Field},
		{"method", c.Patterns.Method, &p.Method},
		{"constructor", c.Patterns.Constructor, &p.Constructor},
		{"initializer", c.Patterns.Initializer, &p.Initializer},
	}
	for _, e := range entries {
		if e.pattern == "" {
			continue
		}
		f, err := format.New(e.pattern)
		if err != nil {
			return format.Patterns{}, fmt.Errorf("patterns.%s: %w", e.key, err)
		}
		*e.dst = f
	}
	return p, nil
}
