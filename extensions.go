// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import "strings"

// ExtensionPatterns converts an extension list to recursive glob patterns.
//
// "md", ".md" and "*.md" all give "**/*.md". Extensions are lower-cased,
// blanks and repeats are dropped, and first-seen order is kept.
func ExtensionPatterns(exts []string) []string {
	seen := make(map[string]struct{}, len(exts))
	patterns := make([]string, 0, len(exts))
	for _, raw := range exts {
		ext := asciiLower(strings.TrimLeft(strings.TrimPrefix(strings.TrimSpace(raw), "*."), "."))
		if ext == "" {
			continue
		}

		if _, ok := seen[ext]; ok {
			continue
		}

		seen[ext] = struct{}{}
		patterns = append(patterns, "**/*."+ext)
	}

	return patterns
}
