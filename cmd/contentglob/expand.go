// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/contentglob"
)

func newExpandCmd() *cobra.Command {
	var (
		cwd    string
		exts   []string
		ignore []string
		opts   contentglob.ExpandOptions
	)

	cmd := &cobra.Command{
		Use:   "expand [PATTERN...]",
		Short: "Expand glob patterns into files under a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := contentglob.MergePatterns(args, contentglob.ExtensionPatterns(exts))
			if len(patterns) == 0 {
				return errors.New("no patterns: pass PATTERN arguments or --ext")
			}

			e, prepared, err := prepareExpand(cwd, patterns)
			if err != nil {
				return err
			}

			opts.Ignore = ignore
			files, err := e.Expand(cmd.Context(), prepared, opts)
			if err != nil {
				return err
			}

			return printLines(cmd.OutOrStdout(), files)
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "", "directory patterns are relative to (default: current directory)")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "file extensions to expand recursively, e.g. md,mdx")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "pattern removing files from results, repeatable")
	cmd.Flags().BoolVarP(&opts.CaseInsensitive, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().BoolVar(&opts.Dot, "dot", false, "let ignore wildcards match dot-leading segments")

	return cmd
}

func newTranslatableCmd() *cobra.Command {
	var cwd string

	cmd := &cobra.Command{
		Use:   "translatable PATTERN...",
		Short: "List JS/TS source files that may hold translatable strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir(cwd)
			if err != nil {
				return err
			}

			e, err := contentglob.NewFSExpander(dir)
			if err != nil {
				return err
			}

			files, err := contentglob.GlobTranslatableFiles(cmd.Context(), e, dir, args)
			if err != nil {
				return err
			}

			return printLines(cmd.OutOrStdout(), files)
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "", "directory patterns are relative to (default: current directory)")

	return cmd
}

// prepareExpand creates a filesystem expander rooted at cwd and prepares patterns for it.
func prepareExpand(cwd string, patterns []string) (*contentglob.FSExpander, []string, error) {
	dir, err := workDir(cwd)
	if err != nil {
		return nil, nil, err
	}

	e, err := contentglob.NewFSExpander(dir)
	if err != nil {
		return nil, nil, err
	}

	prepared, err := contentglob.PreparePatterns(e.Root, patterns)
	if err != nil {
		return nil, nil, err
	}

	return e, prepared, nil
}

// workDir returns dir or the process working directory when dir is empty.
func workDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return wd, nil
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
