// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nokout/wsdl2schema/internal/render"

	// Import renderers to auto-register.
	_ "github.com/nokout/wsdl2schema/internal/render/gotypes"
	_ "github.com/nokout/wsdl2schema/internal/render/individual"
	_ "github.com/nokout/wsdl2schema/internal/render/unified"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Example: `  # List formats
  wsdl2schema formats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range render.Available() {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", name, render.Describe(name))
			}
			return w.Flush()
		},
	}
}
