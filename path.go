// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import "strings"

// extendedLengthPrefix is the Windows "\\?\" prefix after separator conversion.
const extendedLengthPrefix = "//?/"

// NormalizePath converts p to forward-slash form.
//
// Backslashes become "/", the Windows extended-length prefix is dropped and a
// leading drive letter "C:" becomes a plain "/C" segment, so "C:\docs\a.md"
// normalizes to "/C/docs/a.md". The function is total and idempotent.
func NormalizePath(p string) string {
	if strings.Contains(p, `\`) {
		p = strings.ReplaceAll(p, `\`, `/`)
	}

	for strings.HasPrefix(p, extendedLengthPrefix) {
		p = p[len(extendedLengthPrefix):]
	}

	if hasDriveLetter(p) {
		p = "/" + p[:1] + p[2:]
	}

	return p
}

// hasDriveLetter reports whether p starts with "X:" followed by end or "/".
func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}

	c := p[0]
	if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return false
	}

	return len(p) == 2 || p[2] == '/'
}

// normalizeRelative normalizes separators and drops leading "./".
func normalizeRelative(p string) string {
	p = NormalizePath(p)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}

	return p
}

// normalizePattern drops leading "./" from a pattern.
func normalizePattern(raw string) string {
	for strings.HasPrefix(raw, "./") {
		raw = raw[2:]
	}

	return raw
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
