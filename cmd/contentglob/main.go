// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

// Command contentglob matches and expands content glob patterns.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/contentglob"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(2)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "contentglob",
		Short:         "Match and expand content glob patterns",
		Long:          "contentglob matches paths against glob pattern lists, relative to content root folders, and expands patterns into files.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}

			contentglob.SetLogger(log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Level:  level,
				Prefix: "contentglob",
			}))

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	rootCmd.AddCommand(
		newMatchCmd(),
		newExpandCmd(),
		newTranslatableCmd(),
		newDefaultsCmd(),
		newSourcesCmd(),
	)

	return rootCmd
}
