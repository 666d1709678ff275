// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package cmdctx_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokout/wsdl2schema/internal/cmdctx"
	"github.com/nokout/wsdl2schema/internal/config"
)

func TestLoadFrom_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.YAMLFileName)
	require.NoError(t, os.WriteFile(path, []byte("format: unified\n"), 0o600))

	ctx, err := cmdctx.LoadFrom(context.Background(), dir)
	require.NoError(t, err)

	c := cmdctx.From(ctx)
	require.NotNil(t, c)
	assert.Equal(t, path, c.ConfigPath)
	assert.Equal(t, "unified", c.Config.Format)
}

func TestLoadFrom_NoConfigFile(t *testing.T) {
	ctx, err := cmdctx.LoadFrom(context.Background(), t.TempDir())
	require.NoError(t, err)

	c := cmdctx.From(ctx)
	require.NotNil(t, c)
	assert.Empty(t, c.ConfigPath)
	require.NotNil(t, c.Config, "absent config still yields an empty Config")
	assert.Empty(t, c.Config.Format)
}

func TestWith(t *testing.T) {
	want := &cmdctx.Context{Config: &config.Config{Format: "individual"}, ConfigPath: "/x/y.toml"}

	ctx := cmdctx.With(context.Background(), want)
	assert.Same(t, want, cmdctx.From(ctx))
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, cmdctx.From(context.Background()))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := cmdctx.RequireFromCommand(cmd)
	assert.ErrorContains(t, err, "configuration context not loaded")

	cmd.SetContext(cmdctx.With(context.Background(), &cmdctx.Context{Config: &config.Config{}}))
	c, err := cmdctx.RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
