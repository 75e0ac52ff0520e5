// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

// CompileOptions controls pattern compilation.
type CompileOptions struct {
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// Dot lets wildcards match path segments starting with ".".
	Dot bool `json:"dot,omitempty" yaml:"dot,omitempty"`
}

// ExpandOptions controls pattern expansion by an Expander.
type ExpandOptions struct {
	// Ignore patterns remove matching files from expansion results.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	// CaseInsensitive enables case-insensitive walking and ignore matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// Dot keeps dot files matched by ignore wildcards.
	Dot bool `json:"dot,omitempty" yaml:"dot,omitempty"`
}

// compileOptions derives ignore-matcher options from expansion options.
func (opts ExpandOptions) compileOptions() CompileOptions {
	return CompileOptions{
		CaseInsensitive: opts.CaseInsensitive,
		Dot:             opts.Dot,
	}
}
