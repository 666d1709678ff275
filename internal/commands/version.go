// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nokout/wsdl2schema/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.Info())
			return nil
		},
	}
}
