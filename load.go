// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadPatternsFile reads and parses patterns from a file on disk.
func LoadPatternsFile(path string) ([]string, error) {
	return LoadPatternsFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadPatternsFS reads and parses patterns from a file in fsys.
//
// Pattern files usually live next to content, so loaders can be pointed at
// the same fs.FS an FSExpander walks.
func LoadPatternsFS(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read patterns file: %w", err)
	}

	patterns, err := ParsePatternsString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse patterns file %s: %w", name, err)
	}

	return patterns, nil
}

// LoadPatternsFiles reads patterns from files on disk and merges them in order.
func LoadPatternsFiles(paths ...string) ([]string, error) {
	sets := make([][]string, len(paths))
	for i, path := range paths {
		patterns, err := LoadPatternsFile(path)
		if err != nil {
			return nil, err
		}

		sets[i] = patterns
	}

	return MergePatterns(sets...), nil
}
