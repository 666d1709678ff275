// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/nokout/wsdl2schema/internal/cmdctx"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wsdl2schema",
		Short:             "Convert WSDL/XSD record types to JSON Schema",
		PersistentPreRunE: cmdctx.PreRunLoad,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
