// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPatternsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".contentignore")
	writeTestFile(t, path, "**/_*/**\n# drafts\n**/*.draft.md\n")

	patterns, err := LoadPatternsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/_*/**", "**/*.draft.md"}, patterns)
}

func TestLoadPatternsFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadPatternsFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPatternsFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.patterns")
	p2 := filepath.Join(dir, "b.patterns")
	writeTestFile(t, p1, "*.md\n")
	writeTestFile(t, p2, "*.mdx\n")

	patterns, err := LoadPatternsFiles(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.md", "*.mdx"}, patterns)
}

func TestLoadPatternsFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"site/.contentignore": {Data: []byte("\\#literal\n\n**/__tests__/**\n")},
	}

	patterns, err := LoadPatternsFS(fsys, "site/.contentignore")
	require.NoError(t, err)
	assert.Equal(t, []string{"#literal", "**/__tests__/**"}, patterns)

	_, err = LoadPatternsFS(fsys, "site/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
