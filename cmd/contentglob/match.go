// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/contentglob"
)

func newMatchCmd() *cobra.Command {
	var (
		patterns []string
		files    []string
		roots    []string
		opts     contentglob.CompileOptions
	)

	cmd := &cobra.Command{
		Use:   "match PATH...",
		Short: "Report whether paths match a pattern list",
		Long: "Match prints each path with true or false. With --root, paths are absolute and matched " +
			"relative to the first root containing them; a path outside all roots is an error.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := contentglob.LoadPatternsFiles(files...)
			if err != nil {
				return err
			}

			all := contentglob.MergePatterns(patterns, loaded)
			out := cmd.OutOrStdout()

			if len(roots) == 0 {
				m, err := contentglob.CompileWithOptions(all, opts)
				if err != nil {
					return err
				}

				for _, p := range args {
					_, _ = fmt.Fprintf(out, "%s\t%t\n", p, m.MatchPath(p))
				}

				return nil
			}

			rm, err := contentglob.NewRootMatcher(all, roots, opts)
			if err != nil {
				return err
			}

			for _, p := range args {
				matched, err := rm.Match(p)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(out, "%s\t%t\n", p, matched)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "glob pattern, repeatable")
	cmd.Flags().StringArrayVarP(&files, "patterns-file", "f", nil, "file with one pattern per line, repeatable")
	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "content root folder in priority order, repeatable")
	cmd.Flags().BoolVarP(&opts.CaseInsensitive, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().BoolVar(&opts.Dot, "dot", false, "let wildcards match dot-leading segments")

	return cmd
}
