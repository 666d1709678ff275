// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package cmdctx carries discovered configuration through a command's
// context.Context so subcommands don't repeat discovery.
package cmdctx

import (
	"context"
	"os"

	"github.com/nokout/wsdl2schema/internal/config"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the configuration discovered for this invocation.
type Context struct {
	// Config is the discovered configuration, or an empty Config when no
	// config file exists.
	Config *config.Config

	// ConfigPath is the file the config was loaded from, empty if none.
	ConfigPath string
}

// Load discovers configuration from the current working directory and
// returns a new context.Context with the result stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(ctx, cwd)
}

// LoadFrom is Load with an explicit start directory, for tests.
func LoadFrom(ctx context.Context, dir string) (context.Context, error) {
	cfg, path, err := config.Discover(dir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg, ConfigPath: path}), nil
}

// With stores an already-built Context, used when --config names a file
// explicitly.
func With(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// From extracts the Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if c, ok := ctx.Value(contextKey{}).(*Context); ok {
		return c
	}
	return nil
}
