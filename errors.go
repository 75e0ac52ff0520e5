// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for contentglob operations.
var (
	// ErrInvalidPattern indicates malformed or unsupported glob pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrRootNotFound indicates a path that is not contained in any root folder.
	ErrRootNotFound = errors.New("path is not contained in any root folder")
	// ErrInvalidConfig indicates malformed sources configuration.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrPatternOutsideRoot indicates an expansion pattern escaping expander root.
	ErrPatternOutsideRoot = errors.New("pattern is outside expansion root")
)

// PatternSyntaxError reports one glob pattern that could not be compiled.
type PatternSyntaxError struct {
	// Pattern is the offending source pattern.
	Pattern string
	// Reason describes what is wrong with the pattern.
	Reason string
	// Index is the byte offset of the problem, -1 when unknown.
	Index int
}

func (e *PatternSyntaxError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s %q at offset %d: %s", ErrInvalidPattern, e.Pattern, e.Index, e.Reason)
	}

	return fmt.Sprintf("%s %q: %s", ErrInvalidPattern, e.Pattern, e.Reason)
}

// Unwrap returns ErrInvalidPattern.
func (e *PatternSyntaxError) Unwrap() error {
	return ErrInvalidPattern
}

// RootNotFoundError reports an absolute path outside every configured root folder.
type RootNotFoundError struct {
	// Path is the absolute path that failed to resolve.
	Path string
	// Roots is the full root folder list the path was checked against.
	Roots []string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("%s: path=%q roots=[%s]", ErrRootNotFound, e.Path, strings.Join(e.Roots, ", "))
}

// Unwrap returns ErrRootNotFound.
func (e *RootNotFoundError) Unwrap() error {
	return ErrRootNotFound
}

func syntaxError(pattern string, index int, format string, args ...any) *PatternSyntaxError {
	return &PatternSyntaxError{
		Pattern: pattern,
		Index:   index,
		Reason:  fmt.Sprintf(format, args...),
	}
}
