// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"fmt"
	"regexp"
	"slices"
)

// Matcher reports whether a path is matched by any of its patterns.
//
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	// union is one alternation of all positive patterns, nil when there are none.
	union *regexp.Regexp
	// negated holds "!pattern" entries, each matching paths the pattern rejects.
	negated []*regexp.Regexp
	// patterns is a copy of source patterns in input order.
	patterns []string
}

// Compile compiles patterns into one matcher with default options.
func Compile(patterns []string) (*Matcher, error) {
	return CompileWithOptions(patterns, CompileOptions{})
}

// CompileWithOptions compiles patterns into one matcher.
//
// The matcher accepts a path when at least one pattern accepts it. An empty
// pattern list yields a matcher that accepts nothing.
//
// Negated extglob groups "!(...)" have no RE2 form and are rejected with a
// *PatternSyntaxError; a leading "!" negating the whole pattern is supported.
func CompileWithOptions(patterns []string, opts CompileOptions) (*Matcher, error) {
	m := &Matcher{
		patterns: slices.Clone(patterns),
	}

	if len(patterns) == 0 {
		return m, nil
	}

	bodies := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		cp, err := compilePattern(pattern, opts)
		if err != nil {
			return nil, err
		}

		if cp.negated {
			m.negated = append(m.negated, cp.re)
			continue
		}

		bodies = append(bodies, cp.body)
	}

	if len(bodies) == 0 {
		return m, nil
	}

	union, err := regexp.Compile(anchorBodies(bodies, opts.CaseInsensitive))
	if err != nil {
		return nil, fmt.Errorf("%w: combine %d patterns: %v", ErrInvalidPattern, len(bodies), err)
	}

	m.union = union
	return m, nil
}

// Match reports whether s, tested as given, is matched by any pattern.
func (m *Matcher) Match(s string) bool {
	if m == nil {
		return false
	}

	if m.union != nil && m.union.MatchString(s) {
		return true
	}

	for _, re := range m.negated {
		if !re.MatchString(s) {
			return true
		}
	}

	return false
}

// MatchPath normalizes separators of p before matching it.
func (m *Matcher) MatchPath(p string) bool {
	return m.Match(normalizeRelative(p))
}

// Patterns returns a copy of source patterns in input order.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.patterns)
}

// Empty reports whether the matcher was built from no patterns.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.patterns) == 0
}
