// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeToRoots(t *testing.T) {
	t.Parallel()

	roots := []string{"/site/docs", "/site/blog"}

	rel, err := RelativeToRoots("/site/docs/guide/_draft.md", roots)
	require.NoError(t, err)
	assert.Equal(t, "guide/_draft.md", rel)

	m, err := Compile([]string{"**/_*.md"})
	require.NoError(t, err)
	assert.True(t, m.Match(rel))

	rel, err = RelativeToRoots("/site/blog/2024/post.md", roots)
	require.NoError(t, err)
	assert.Equal(t, "2024/post.md", rel)
}

func TestRelativeToRootsNotFound(t *testing.T) {
	t.Parallel()

	roots := []string{"/site/docs"}
	rel, err := RelativeToRoots("/other/file.md", roots)
	require.Error(t, err)
	assert.Empty(t, rel)
	assert.ErrorIs(t, err, ErrRootNotFound)

	var notFound *RootNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "/other/file.md", notFound.Path)
	assert.Equal(t, roots, notFound.Roots)
	assert.Contains(t, err.Error(), "/other/file.md")
	assert.Contains(t, err.Error(), "/site/docs")
}

func TestRelativeToRootsRequiresSeparator(t *testing.T) {
	t.Parallel()

	_, err := RelativeToRoots("/site/docs-old/a.md", []string{"/site/docs"})
	assert.ErrorIs(t, err, ErrRootNotFound)

	_, err = RelativeToRoots("/site/docs", []string{"/site/docs"})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestRelativeToRootsSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path  string
		roots []string
		want  string
	}{
		{"/site/docs/a.md", []string{"/site/docs/"}, "a.md"},
		{`C:\site\docs\a\b.md`, []string{`C:\site\docs`}, "a/b.md"},
		{`C:\site\docs\a\b.md`, []string{`C:\site\docs\`}, "a/b.md"},
		{`C:\site\docs\a\b.md`, []string{"C:/site/docs"}, "a/b.md"},
		{"/site/docs/a/./b/../c.md", []string{"/site/docs"}, "a/c.md"},
		{"/site/docs/", []string{"/site/docs"}, ""},
		{"/a/b", []string{"/"}, "a/b"},
		{"/site/a", []string{"", "/site"}, "a"},
		{"/site/docs//x.md", []string{"/site/docs"}, "x.md"},
		{"/site/docs///guide/x.md", []string{"/site/docs/"}, "guide/x.md"},
		{`C:\site\docs\\x.md`, []string{`C:\site\docs`}, "x.md"},
	}

	for _, tt := range tests {
		got, err := RelativeToRoots(tt.path, tt.roots)
		require.NoError(t, err, "path %q roots %q", tt.path, tt.roots)
		assert.Equal(t, tt.want, got, "path %q roots %q", tt.path, tt.roots)
	}
}

func TestRelativeToRootsFirstRootWins(t *testing.T) {
	t.Parallel()

	rel, err := RelativeToRoots("/site/docs/a.md", []string{"/site", "/site/docs"})
	require.NoError(t, err)
	assert.Equal(t, "docs/a.md", rel)
}

func TestRelativeToRootsEmptyRoots(t *testing.T) {
	t.Parallel()

	_, err := RelativeToRoots("/site/a.md", nil)
	assert.ErrorIs(t, err, ErrRootNotFound)

	_, err = RelativeToRoots("/site/a.md", []string{""})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestRootMatcher(t *testing.T) {
	t.Parallel()

	rm, err := NewRootMatcher([]string{"**/_*/**"}, []string{"/home/_work/site/docs"}, CompileOptions{})
	require.NoError(t, err)

	matched, err := rm.Match("/home/_work/site/docs/_partials/a.md")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = rm.Match("/home/_work/site/docs/guide/a.md")
	require.NoError(t, err)
	assert.False(t, matched, "underscore folder above root must not match")

	assert.Equal(t, []string{"/home/_work/site/docs"}, rm.Roots())
}

func TestRootMatcherRepeatedSeparatorAfterRoot(t *testing.T) {
	t.Parallel()

	rm, err := NewRootMatcher([]string{"**/*.md"}, []string{"/site/docs"}, CompileOptions{})
	require.NoError(t, err)

	for _, p := range []string{"/site/docs/x.md", "/site/docs//x.md", `\site\docs\\x.md`} {
		matched, err := rm.Match(p)
		require.NoError(t, err, "path %q", p)
		assert.True(t, matched, "path %q", p)
	}
}

func TestRootMatcherForwardsRootNotFound(t *testing.T) {
	t.Parallel()

	rm, err := NewRootMatcher([]string{"**"}, []string{"/site/docs"}, CompileOptions{})
	require.NoError(t, err)

	matched, err := rm.Match("/other/a.md")
	assert.False(t, matched)

	var notFound *RootNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "/other/a.md", notFound.Path)
}

func TestRootMatcherRejectsInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewRootMatcher([]string{"{a,b"}, []string{"/site"}, CompileOptions{})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestRootMatcherRootsCopy(t *testing.T) {
	t.Parallel()

	roots := []string{"/site/docs"}
	rm, err := NewRootMatcher([]string{"*.md"}, roots, CompileOptions{})
	require.NoError(t, err)

	roots[0] = "/elsewhere"
	matched, err := rm.Match("/site/docs/a.md")
	require.NoError(t, err)
	assert.True(t, matched)
}
