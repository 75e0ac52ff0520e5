// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

// MergePatterns concatenates pattern lists preserving input order.
//
// The result never aliases input backing arrays. Matching a merged list is
// the union of matching each list.
func MergePatterns(sets ...[]string) []string {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]string, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
