// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/contentglob"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print built-in exclude patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printLines(cmd.OutOrStdout(), contentglob.DefaultExcludes())
		},
	}
}

func newSourcesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Collect content source files described by a YAML config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := contentglob.LoadConfigFile(configPath)
			if err != nil {
				return err
			}

			collected, err := cfg.Collect(cmd.Context(), nil)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(collected); err != nil {
				return fmt.Errorf("encode sources: %w", err)
			}

			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "contentglob.yaml", "config file path")

	return cmd
}
