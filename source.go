// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"context"
	"fmt"
	"path/filepath"
)

// Source is one content source spread over one or more root folders.
type Source struct {
	// Name identifies the source.
	Name string `json:"name" yaml:"name"`
	// Paths are root folders in priority order, such as a localized folder
	// followed by the default one. Paths must not contain each other.
	Paths []string `json:"paths" yaml:"paths"`
	// Include patterns select files relative to each path.
	Include []string `json:"include" yaml:"include"`
	// Exclude patterns drop files relative to their path. Nil means
	// DefaultExcludes, an empty list excludes nothing.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// SourceFiles is the collection result of one source.
type SourceFiles struct {
	// Name is the source name.
	Name string `json:"name" yaml:"name"`
	// Files are absolute file paths in collection order.
	Files []string `json:"files" yaml:"files"`
}

// ExpanderFactory creates an Expander resolving patterns under root.
type ExpanderFactory func(root string) (Expander, error)

// DefaultExpanderFactory walks the real filesystem.
func DefaultExpanderFactory(root string) (Expander, error) {
	return NewFSExpander(root)
}

// excludes returns exclude patterns with defaults applied.
func (s *Source) excludes() []string {
	if s.Exclude == nil {
		return DefaultExcludes()
	}

	return s.Exclude
}

// Collect expands include patterns under every path and drops excluded files.
//
// Relative paths resolve against the process working directory, and the
// expander factory receives the resolved absolute path.
//
// Exclusion is evaluated relative to the path a file was found under, so an
// "_" folder above the source paths does not hide the source. A file found
// under several paths is kept from the first one only.
func (s *Source) Collect(ctx context.Context, newExpander ExpanderFactory, opts CompileOptions) ([]string, error) {
	if newExpander == nil {
		newExpander = DefaultExpanderFactory
	}

	roots, err := absRoots(s.Paths)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", s.Name, err)
	}

	exclude, err := NewRootMatcher(s.excludes(), roots, opts)
	if err != nil {
		return nil, fmt.Errorf("source %q exclude: %w", s.Name, err)
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, 64)
	for _, root := range roots {
		e, err := newExpander(root)
		if err != nil {
			return nil, fmt.Errorf("source %q expander for %s: %w", s.Name, root, err)
		}

		files, err := e.Expand(ctx, s.Include, ExpandOptions{
			CaseInsensitive: opts.CaseInsensitive,
			Dot:             opts.Dot,
		})
		if err != nil {
			return nil, fmt.Errorf("source %q expand %s: %w", s.Name, root, err)
		}

		kept := 0
		for _, file := range files {
			rel, err := exclude.Relative(file)
			if err != nil {
				return nil, fmt.Errorf("source %q: %w", s.Name, err)
			}

			if exclude.Matcher().Match(rel) {
				continue
			}

			if _, ok := seen[rel]; ok {
				continue
			}

			seen[rel] = struct{}{}
			out = append(out, file)
			kept++
		}

		Logger().Debug("collected source root", "source", s.Name, "root", root, "found", len(files), "kept", kept)
	}

	return out, nil
}

// absRoots resolves source paths to absolute paths, keeping absolute ones.
func absRoots(paths []string) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("abs path %q: %w", p, err)
		}

		out[i] = abs
	}

	return out, nil
}

// Collect collects every source in declaration order.
func (c *Config) Collect(ctx context.Context, newExpander ExpanderFactory) ([]SourceFiles, error) {
	opts := c.CompileOptions()
	out := make([]SourceFiles, 0, len(c.Sources))

	for i := range c.Sources {
		files, err := c.Sources[i].Collect(ctx, newExpander, opts)
		if err != nil {
			return nil, err
		}

		out = append(out, SourceFiles{
			Name:  c.Sources[i].Name,
			Files: files,
		})
	}

	return out, nil
}
