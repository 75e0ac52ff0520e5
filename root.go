// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"path"
	"slices"
	"strings"
)

// RelativeToRoots returns absPath relative to the first root folder containing it.
//
// Roots are tried in the given order. A root contains absPath when absPath
// starts with the root followed by a separator; "/" and "\" are both
// accepted and trailing separators on roots are ignored. When no root
// contains absPath, a *RootNotFoundError is returned.
func RelativeToRoots(absPath string, roots []string) (string, error) {
	return resolveRelative(absPath, roots, rootPrefixes(roots))
}

// RootMatcher matches absolute paths by their path relative to a root folder.
//
// Patterns such as "**/_*/**" are evaluated inside each root, so "_" folders
// above a root never exclude anything.
type RootMatcher struct {
	// matcher evaluates root-relative paths.
	matcher *Matcher
	// roots is a copy of root folders in input order.
	roots []string
	// prefixes are normalized roots with trailing "/", empty for unusable roots.
	prefixes []string
}

// NewRootMatcher compiles patterns once for matching paths under roots.
func NewRootMatcher(patterns []string, roots []string, opts CompileOptions) (*RootMatcher, error) {
	m, err := CompileWithOptions(patterns, opts)
	if err != nil {
		return nil, err
	}

	return &RootMatcher{
		matcher:  m,
		roots:    slices.Clone(roots),
		prefixes: rootPrefixes(roots),
	}, nil
}

// Match reports whether absPath, relative to its root folder, is matched.
//
// A path outside all roots is a configuration error: the *RootNotFoundError
// is returned instead of a false match.
func (rm *RootMatcher) Match(absPath string) (bool, error) {
	rel, err := rm.Relative(absPath)
	if err != nil {
		return false, err
	}

	return rm.matcher.Match(rel), nil
}

// Relative returns absPath relative to its root folder.
func (rm *RootMatcher) Relative(absPath string) (string, error) {
	return resolveRelative(absPath, rm.roots, rm.prefixes)
}

// Roots returns a copy of root folders in input order.
func (rm *RootMatcher) Roots() []string {
	return slices.Clone(rm.roots)
}

// Matcher returns the compiled root-relative matcher.
func (rm *RootMatcher) Matcher() *Matcher {
	return rm.matcher
}

// rootPrefixes normalizes roots into "root/" prefixes.
func rootPrefixes(roots []string) []string {
	prefixes := make([]string, len(roots))
	for i, root := range roots {
		normalized := NormalizePath(root)
		if normalized == "" {
			// An empty root would contain every absolute path.
			continue
		}

		prefixes[i] = strings.TrimRight(normalized, "/") + "/"
	}

	return prefixes
}

// resolveRelative strips the first matching prefix from normalized absPath.
func resolveRelative(absPath string, roots []string, prefixes []string) (string, error) {
	normalized := NormalizePath(absPath)
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}

		if rel, ok := strings.CutPrefix(normalized, prefix); ok {
			return cleanRelative(rel), nil
		}
	}

	return "", &RootNotFoundError{
		Path:  absPath,
		Roots: slices.Clone(roots),
	}
}

// cleanRelative cleans a root-relative path, the root itself becomes "".
// Separators repeated right after the root are dropped.
func cleanRelative(rel string) string {
	rel = strings.TrimLeft(rel, "/")
	if rel == "" {
		return ""
	}

	rel = path.Clean(rel)
	if rel == "." {
		return ""
	}

	return rel
}
