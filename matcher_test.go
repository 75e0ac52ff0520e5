// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyMatchesNothing(t *testing.T) {
	t.Parallel()

	for _, patterns := range [][]string{nil, {}} {
		m, err := Compile(patterns)
		require.NoError(t, err)
		assert.True(t, m.Empty())

		for _, s := range []string{"", "a", "a/b", ".", "/", "docs/intro.md"} {
			assert.False(t, m.Match(s), "empty matcher accepted %q", s)
		}
	}
}

func TestCompileUnionSemantics(t *testing.T) {
	t.Parallel()

	p1 := []string{"*.md", "blog/**/_*"}
	p2 := []string{"docs/**", "!**/*.ts"}
	paths := []string{
		"a.md",
		"a.ts",
		"docs",
		"docs/x/y.ts",
		"blog/2024/_draft.md",
		"blog/post.md",
		"src/main.ts",
		"src/main.go",
		".md",
		"",
	}

	m1, err := Compile(p1)
	require.NoError(t, err)
	m2, err := Compile(p2)
	require.NoError(t, err)
	both, err := Compile(MergePatterns(p1, p2))
	require.NoError(t, err)

	for _, s := range paths {
		assert.Equal(t, m1.Match(s) || m2.Match(s), both.Match(s), "path %q", s)
	}
}

func TestMatcherGlobSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/_*.md", "guide/_draft.md", true},
		{"**/_*.md", "_draft.md", true},
		{"**/_*.md", "guide/draft.md", false},
		{"*.md", "a.md", true},
		{"*.md", "dir/a.md", false},
		{"*.md", ".md", false},
		{"*.md", ".hidden.md", false},
		{"*", "file", true},
		{"*", "", false},
		{"a/*", "a/", false},
		{"**", "src/a.go", true},
		{"**", ".git/config", false},
		{".github/**", ".github/workflows/ci.yml", true},
		{"docs/**", "docs", true},
		{"docs/**", "docs/a/b/c.md", true},
		{"docs/**", "docsx/a.md", false},
		{"a/**/b", "a/b", true},
		{"a/**/b", "a/x/y/b", true},
		{"a/**/b", "a/x/y/c", false},
		{"a**b", "axxb", true},
		{"a**b", "ax/xb", false},
		{"?.txt", "a.txt", true},
		{"?.txt", "ab.txt", false},
		{"?.txt", "..txt", false},
		{"*.{js,ts}", "a.js", true},
		{"*.{js,ts}", "a.ts", true},
		{"*.{js,ts}", "a.go", false},
		{"{a,b{c,d}}.txt", "bd.txt", true},
		{"{a,b{c,d}}.txt", "b.txt", false},
		{"{docs,blog}/*.md", "blog/post.md", true},
		{"docs/{**,c}", "docs", true},
		{"docs/{**,c}", "docs/a/b.md", true},
		{"docs/{**,c}", "docs/c", true},
		{"docs/{**,c}", "docs/", false},
		{"docs/{**,c}", "docsx", false},
		{"docs/{**,c}", "docs/.git/config", false},
		{"docs/{**,c}.md", "docs", false},
		{"{a}.txt", "{a}.txt", true},
		{"file{1..3}.txt", "file2.txt", true},
		{"file{1..3}.txt", "file4.txt", false},
		{"v{01..10}", "v05", true},
		{"v{01..10}", "v5", false},
		{"v{10..1..3}", "v4", true},
		{"v{10..1..3}", "v5", false},
		{"{a..c}.md", "b.md", true},
		{"{a..c}.md", "d.md", false},
		{"[abc].txt", "b.txt", true},
		{"[abc].txt", "d.txt", false},
		{"[!abc].txt", "d.txt", true},
		{"[!abc].txt", "a.txt", false},
		{"[^abc].txt", "a.txt", false},
		{"a[!x]b", "a/b", false},
		{"[a-c]x", "bx", true},
		{"[[:digit:]].txt", "5.txt", true},
		{"[[:digit:]].txt", "x.txt", false},
		{"@(foo|bar).md", "foo.md", true},
		{"@(foo|bar).md", "baz.md", false},
		{"+(ab).txt", "abab.txt", true},
		{"+(ab).txt", ".txt", false},
		{"?(x)y", "y", true},
		{"?(x)y", "xy", true},
		{"*(a)b", "aab", true},
		{"*(a)b", "b", true},
		{`\*.md`, "*.md", true},
		{`\*.md`, "a.md", false},
		{"file(1).txt", "file(1).txt", true},
		{"a+b.txt", "a+b.txt", true},
		{"./docs/*.md", "docs/a.md", true},
		{"!*.md", "a.ts", true},
		{"!*.md", "a.md", false},
		{"!!*.md", "a.md", true},
		{"naïve/*.md", "naïve/a.md", true},
	}

	for _, tt := range tests {
		m, err := Compile([]string{tt.pattern})
		require.NoError(t, err, "pattern %q", tt.pattern)
		assert.Equal(t, tt.want, m.Match(tt.path), "pattern %q path %q", tt.pattern, tt.path)
	}
}

func TestMatcherDotOption(t *testing.T) {
	t.Parallel()

	m, err := CompileWithOptions([]string{"*.md", "**/*.yml"}, CompileOptions{Dot: true})
	require.NoError(t, err)

	assert.True(t, m.Match(".hidden.md"))
	assert.True(t, m.Match(".github/workflows/ci.yml"))
	assert.False(t, m.Match("dir/.hidden.md"))
}

func TestMatcherCaseInsensitive(t *testing.T) {
	t.Parallel()

	sensitive, err := Compile([]string{"docs/*.MD"})
	require.NoError(t, err)
	assert.False(t, sensitive.Match("docs/a.md"))

	insensitive, err := CompileWithOptions([]string{"docs/*.MD"}, CompileOptions{CaseInsensitive: true})
	require.NoError(t, err)
	assert.True(t, insensitive.Match("DOCS/a.md"))
}

func TestMatcherMatchPathNormalizes(t *testing.T) {
	t.Parallel()

	m, err := Compile([]string{"docs/*.md"})
	require.NoError(t, err)

	assert.True(t, m.MatchPath(`docs\a.md`))
	assert.True(t, m.MatchPath("./docs/a.md"))
	assert.False(t, m.Match(`docs\a.md`))
}

func TestCompileRejectsInvalidPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		index   int
	}{
		{"", -1},
		{"!", -1},
		{"[abc", -1},
		{"[]", -1},
		{"{a,b", -1},
		{"a}", -1},
		{`abc\`, -1},
		{"@(a|b", 0},
		{"x/+(a", 2},
		{"!(a)", 0},
		{"docs/!(draft).md", 5},
		{"[z-a].md", -1},
		{"{1..100000}", 0},
	}

	for _, tt := range tests {
		_, err := Compile([]string{"*.md", tt.pattern})
		require.Error(t, err, "pattern %q", tt.pattern)
		assert.ErrorIs(t, err, ErrInvalidPattern)

		var syntaxErr *PatternSyntaxError
		require.True(t, errors.As(err, &syntaxErr), "pattern %q: %v", tt.pattern, err)
		assert.Equal(t, tt.pattern, syntaxErr.Pattern)
		assert.Equal(t, tt.index, syntaxErr.Index, "pattern %q", tt.pattern)
		assert.NotEmpty(t, syntaxErr.Reason)
	}
}

func TestMatcherPatternsCopy(t *testing.T) {
	t.Parallel()

	src := []string{"*.md", "*.mdx"}
	m, err := Compile(src)
	require.NoError(t, err)

	src[0] = "mutated"
	got := m.Patterns()
	assert.Equal(t, []string{"*.md", "*.mdx"}, got)

	got[1] = "mutated"
	assert.Equal(t, []string{"*.md", "*.mdx"}, m.Patterns())
}

func TestMatcherConcurrentUse(t *testing.T) {
	t.Parallel()

	m, err := Compile(DefaultExcludes())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Match("docs/__tests__/a.ts") && !m.Match("docs/a.ts")
		}(i)
	}

	wg.Wait()
	for i, ok := range results {
		assert.True(t, ok, "goroutine %d", i)
	}
}

func TestNilMatcher(t *testing.T) {
	t.Parallel()

	var m *Matcher
	assert.False(t, m.Match("a"))
	assert.True(t, m.Empty())
	assert.Nil(t, m.Patterns())
}
