// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expander expands glob patterns into concrete file paths.
//
// Patterns passed to Expand are relative to the expander working directory
// and use forward slashes, see PreparePatterns. A leading "!" marks an
// exclusion pattern.
type Expander interface {
	Expand(ctx context.Context, patterns []string, opts ExpandOptions) ([]string, error)
}

// ExpanderFunc adapts a function to Expander.
type ExpanderFunc func(ctx context.Context, patterns []string, opts ExpandOptions) ([]string, error)

// Expand calls f.
func (f ExpanderFunc) Expand(ctx context.Context, patterns []string, opts ExpandOptions) ([]string, error) {
	return f(ctx, patterns, opts)
}

// FSExpander expands patterns by walking a filesystem with doublestar.
type FSExpander struct {
	// FS is walked for matches. Nil means os.DirFS(Root).
	FS fs.FS
	// Root is joined with every match to produce returned paths.
	Root string
}

// NewFSExpander creates an expander over the directory tree at root.
func NewFSExpander(root string) (*FSExpander, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	return &FSExpander{
		FS:   os.DirFS(absRoot),
		Root: absRoot,
	}, nil
}

// Expand returns files matching any include pattern and no exclusion.
//
// Results are deduplicated and ordered by pattern, then by walk order.
// Exclusions are "!pattern" entries and opts.Ignore.
func (e *FSExpander) Expand(ctx context.Context, patterns []string, opts ExpandOptions) ([]string, error) {
	fsys := e.FS
	if fsys == nil {
		fsys = os.DirFS(e.Root)
	}

	include, exclude := splitNegated(patterns)
	ignore, err := CompileWithOptions(MergePatterns(exclude, opts.Ignore), opts.compileOptions())
	if err != nil {
		return nil, fmt.Errorf("compile ignore patterns: %w", err)
	}

	globOpts := []doublestar.GlobOption{
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	}
	if opts.CaseInsensitive {
		globOpts = append(globOpts, doublestar.WithCaseInsensitive())
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, 64)
	for _, pattern := range include {
		pattern = normalizePattern(pattern)
		if escapesRoot(pattern) {
			return nil, fmt.Errorf("%w: %q (root %q)", ErrPatternOutsideRoot, pattern, e.Root)
		}

		err := doublestar.GlobWalk(fsys, pattern, func(p string, _ fs.DirEntry) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if ignore.Match(p) {
				return nil
			}

			if _, ok := seen[p]; ok {
				return nil
			}

			seen[p] = struct{}{}
			out = append(out, e.absolute(p))
			return nil
		}, globOpts...)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
	}

	Logger().Debug("expanded patterns", "root", e.Root, "patterns", len(include), "ignored", len(exclude)+len(opts.Ignore), "files", len(out))
	return out, nil
}

// absolute joins a walk result with expander root.
func (e *FSExpander) absolute(p string) string {
	if e.Root == "" {
		return p
	}

	return filepath.Join(e.Root, filepath.FromSlash(p))
}

// PreparePatterns rewrites patterns relative to cwd with forward slashes.
//
// Absolute patterns are made relative to cwd, relative ones are cleaned, and
// a leading "!" is kept. Empty cwd means the process working directory.
func PreparePatterns(cwd string, patterns []string) ([]string, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}

		cwd = wd
	}

	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, fmt.Errorf("abs cwd: %w", err)
	}

	out := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		negation := ""
		for strings.HasPrefix(pattern, "!") && !strings.HasPrefix(pattern, "!(") {
			negation += "!"
			pattern = pattern[1:]
		}

		target := pattern
		if !filepath.IsAbs(target) {
			target = filepath.Join(absCwd, target)
		}

		rel, err := filepath.Rel(absCwd, target)
		if err != nil {
			return nil, fmt.Errorf("pattern %q relative to %q: %w", pattern, absCwd, err)
		}

		out = append(out, negation+filepath.ToSlash(rel))
	}

	return out, nil
}

// GlobTranslatableFiles expands patterns and keeps translatable source files.
//
// Patterns are prepared relative to cwd, which must be the directory the
// expander resolves patterns from.
func GlobTranslatableFiles(ctx context.Context, e Expander, cwd string, patterns []string) ([]string, error) {
	prepared, err := PreparePatterns(cwd, patterns)
	if err != nil {
		return nil, err
	}

	files, err := e.Expand(ctx, prepared, ExpandOptions{})
	if err != nil {
		return nil, fmt.Errorf("expand translatable sources: %w", err)
	}

	return slices.Collect(FilterTranslatable(files)), nil
}

// splitNegated separates include patterns from "!" exclusions.
func splitNegated(patterns []string) ([]string, []string) {
	include := make([]string, 0, len(patterns))
	var exclude []string

	for _, pattern := range patterns {
		if after, ok := strings.CutPrefix(pattern, "!"); ok && !strings.HasPrefix(pattern, "!(") {
			exclude = append(exclude, after)
			continue
		}

		include = append(include, pattern)
	}

	return include, exclude
}

// escapesRoot reports whether a prepared pattern reaches outside the walk root.
func escapesRoot(pattern string) bool {
	return pattern == ".." || strings.HasPrefix(pattern, "../") || strings.HasPrefix(pattern, "/")
}
