// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"iter"
	"path"
	"strings"
)

// translatableExtensions lists source extensions text can be extracted from.
// Markdown and MDX need compiling to script first and are not listed.
var translatableExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// declarationSuffix marks type-declaration files without runtime text.
const declarationSuffix = ".d.ts"

// IsTranslatable reports whether p is a source file eligible for text extraction.
func IsTranslatable(p string) bool {
	p = NormalizePath(p)
	if !translatableExtensions[path.Ext(p)] {
		return false
	}

	return !strings.HasSuffix(p, declarationSuffix)
}

// FilterTranslatable yields translatable paths in input order.
//
// The sequence is lazy and can be ranged over more than once.
func FilterTranslatable(paths []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range paths {
			if !IsTranslatable(p) {
				continue
			}

			if !yield(p) {
				return
			}
		}
	}
}
