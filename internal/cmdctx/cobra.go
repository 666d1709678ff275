// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package cmdctx

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	c := FromCommand(cmd)
	if c == nil {
		return nil, errors.New("configuration context not loaded")
	}
	return c, nil
}

// PreRunLoad is a PersistentPreRunE that discovers configuration and
// stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
