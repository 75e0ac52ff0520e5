// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns reads one glob pattern per line.
//
// Semantics:
// - blank lines and "#" comments are skipped
// - "\#" escapes a leading "#"
// - "!" is kept and negates the pattern when compiled
// - trailing spaces are trimmed unless escaped by "\"
func ParsePatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	patterns := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		patterns = append(patterns, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString parses patterns from string input.
func ParsePatternsString(src string) ([]string, error) {
	return ParsePatterns(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
