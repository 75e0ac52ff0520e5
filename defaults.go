// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import "slices"

// DefaultExcludesVersion changes whenever DefaultExcludes content changes.
const DefaultExcludesVersion = 1

// defaultExcludes are built-in content exclusions:
//   - files and folders starting with "_", recursively
//   - test files and "__tests__" folders
var defaultExcludes = []string{
	"**/_*.{js,jsx,ts,tsx,md,mdx}",
	"**/_*/**",
	"**/*.test.{js,jsx,ts,tsx}",
	"**/__tests__/**",
}

// DefaultExcludes returns a fresh copy of built-in exclude patterns.
//
// The list is plain pattern data and is combined like any caller patterns,
// usually through NewRootMatcher.
func DefaultExcludes() []string {
	return slices.Clone(defaultExcludes)
}
