// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes content sources and shared matching options.
type Config struct {
	// Sources are content sources in declaration order.
	Sources []Source `json:"sources" yaml:"sources"`
	// CaseInsensitive enables case-insensitive matching for all sources.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// Dot lets wildcards match dot-leading segments for all sources.
	Dot bool `json:"dot,omitempty" yaml:"dot,omitempty"`
}

// CompileOptions returns matching options shared by all sources.
func (c *Config) CompileOptions() CompileOptions {
	return CompileOptions{
		CaseInsensitive: c.CaseInsensitive,
		Dot:             c.Dot,
	}
}

// ParseConfig decodes YAML config from reader and validates it.
//
// Relative source paths are kept as is and resolve against the working
// directory at collection time; use LoadConfigFile to resolve them against
// the config file directory.
func ParseConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}

		return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile reads YAML config from a file.
//
// Relative source paths are resolved against the config file directory.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("abs config dir: %w", err)
	}

	for i := range cfg.Sources {
		for j, p := range cfg.Sources[i].Paths {
			if !filepath.IsAbs(p) {
				cfg.Sources[i].Paths[j] = filepath.Join(base, p)
			}
		}
	}

	return cfg, nil
}

// Validate checks sources and compiles every pattern once.
func (c *Config) Validate() error {
	names := make(map[string]struct{}, len(c.Sources))
	opts := c.CompileOptions()

	for i := range c.Sources {
		s := &c.Sources[i]
		if s.Name == "" {
			return fmt.Errorf("%w: source %d has no name", ErrInvalidConfig, i)
		}

		if _, ok := names[s.Name]; ok {
			return fmt.Errorf("%w: duplicate source name %q", ErrInvalidConfig, s.Name)
		}

		names[s.Name] = struct{}{}

		if err := s.validate(opts); err != nil {
			return fmt.Errorf("%w: source %q: %w", ErrInvalidConfig, s.Name, err)
		}
	}

	return nil
}

// validate checks one source definition.
func (s *Source) validate(opts CompileOptions) error {
	if len(s.Paths) == 0 {
		return errors.New("no paths")
	}

	if len(s.Include) == 0 {
		return errors.New("no include patterns")
	}

	for i, p := range s.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("path %d is empty", i)
		}
	}

	if a, b, ok := overlappingRoots(s.Paths); ok {
		return fmt.Errorf("paths %q and %q overlap", a, b)
	}

	if _, err := CompileWithOptions(s.Include, opts); err != nil {
		return fmt.Errorf("include: %w", err)
	}

	if _, err := CompileWithOptions(s.excludes(), opts); err != nil {
		return fmt.Errorf("exclude: %w", err)
	}

	return nil
}

// overlappingRoots reports the first pair of roots where one contains the other.
func overlappingRoots(roots []string) (string, string, bool) {
	prefixes := rootPrefixes(roots)
	for i := range prefixes {
		for j := range prefixes {
			if i == j {
				continue
			}

			if strings.HasPrefix(prefixes[j], prefixes[i]) {
				return roots[i], roots[j], true
			}
		}
	}

	return "", "", false
}
