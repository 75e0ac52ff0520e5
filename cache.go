// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMatcherCacheSize is used by NewMatcherCache for non-positive sizes.
const DefaultMatcherCacheSize = 128

// MatcherCache keeps recently compiled matchers keyed by pattern list and options.
//
// It is safe for concurrent use. Compile errors are not cached.
type MatcherCache struct {
	entries *lru.Cache[uint64, *cachedMatcher]
}

// cachedMatcher stores one compiled matcher with its exact inputs.
type cachedMatcher struct {
	// matcher is the compiled result.
	matcher *Matcher
	// patterns are compared on hit to rule out hash collisions.
	patterns []string
	// opts are compiled-in options.
	opts CompileOptions
}

// NewMatcherCache creates a cache holding up to size matchers.
func NewMatcherCache(size int) (*MatcherCache, error) {
	if size <= 0 {
		size = DefaultMatcherCacheSize
	}

	entries, err := lru.New[uint64, *cachedMatcher](size)
	if err != nil {
		return nil, fmt.Errorf("create matcher cache: %w", err)
	}

	return &MatcherCache{entries: entries}, nil
}

// Matcher returns a cached matcher for patterns, compiling it on miss.
func (c *MatcherCache) Matcher(patterns []string, opts CompileOptions) (*Matcher, error) {
	key := matcherKey(patterns, opts)
	if entry, ok := c.entries.Get(key); ok && entry.opts == opts && slices.Equal(entry.patterns, patterns) {
		return entry.matcher, nil
	}

	m, err := CompileWithOptions(patterns, opts)
	if err != nil {
		return nil, err
	}

	c.entries.Add(key, &cachedMatcher{
		matcher:  m,
		patterns: slices.Clone(patterns),
		opts:     opts,
	})

	return m, nil
}

// RootMatcher returns a root matcher sharing the cached compiled patterns.
func (c *MatcherCache) RootMatcher(patterns []string, roots []string, opts CompileOptions) (*RootMatcher, error) {
	m, err := c.Matcher(patterns, opts)
	if err != nil {
		return nil, err
	}

	return &RootMatcher{
		matcher:  m,
		roots:    slices.Clone(roots),
		prefixes: rootPrefixes(roots),
	}, nil
}

// Len returns the number of cached matchers.
func (c *MatcherCache) Len() int {
	return c.entries.Len()
}

// Purge drops all cached matchers.
func (c *MatcherCache) Purge() {
	c.entries.Purge()
}

// matcherKey hashes patterns and options; patterns are NUL separated.
func matcherKey(patterns []string, opts CompileOptions) uint64 {
	d := xxhash.New()
	for _, pattern := range patterns {
		_, _ = d.WriteString(pattern)
		_, _ = d.Write([]byte{0})
	}

	var flags byte
	if opts.CaseInsensitive {
		flags |= 1
	}

	if opts.Dot {
		flags |= 2
	}

	_, _ = d.Write([]byte{flags})
	return d.Sum64()
}
