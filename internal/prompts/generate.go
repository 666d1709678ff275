// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunRootModelSelect prompts the user to choose the root record type from
// the loaded catalog. recordNames should already be sorted.
func RunRootModelSelect(value *string, recordNames []string) error {
	options := make([]huh.Option[string], 0, len(recordNames))
	for _, name := range recordNames {
		options = append(options, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Root model for the schema").
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}
