// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package xsdgen invokes the external schema-to-record generator as a
// subprocess and manages its temp directory. The generator is expected to
// emit Go record source for the given XSD/WSDL input; everything past
// that point is the catalog's concern.
package xsdgen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// DefaultGenerator is the generator binary looked up on PATH when no
// explicit command is configured.
const DefaultGenerator = "xsdata-go"

// Options configures a generator run.
type Options struct {
	// Command overrides the generator binary (default: DefaultGenerator).
	Command string

	// TempDir is the directory to generate into. Created (and owned) by
	// Generate when empty.
	TempDir string

	// KeepTemp preserves the temp directory for debugging; otherwise the
	// caller is expected to Cleanup after loading the catalog.
	KeepTemp bool
}

// Result describes a completed generator run.
type Result struct {
	// SourceDir contains the generated record source.
	SourceDir string

	keep bool
	own  bool
}

// Cleanup removes the temp directory unless KeepTemp was set or the
// directory was supplied by the caller.
func (r *Result) Cleanup() {
	if r.keep || !r.own {
		return
	}
	if err := os.RemoveAll(r.SourceDir); err != nil {
		slog.Warn("could not clean up temp directory", "dir", r.SourceDir, "error", err)
	}
}

// Generate runs the external generator against input and returns where
// the generated source landed. Generator stderr surfaces in the returned
// error; there are no retries.
func Generate(ctx context.Context, input string, opts Options) (*Result, error) {
	cmd := opts.Command
	if cmd == "" {
		cmd = DefaultGenerator
	}

	dir := opts.TempDir
	own := false
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "wsdl2schema-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp directory: %w", err)
		}
		own = true
	}

	slog.Debug("running generator", "command", cmd, "input", input, "dir", dir)

	var stderr strings.Builder
	c := exec.CommandContext(ctx, cmd, "generate", "--output", dir, input) //nolint:gosec // command comes from config
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if own && !opts.KeepTemp {
			_ = os.RemoveAll(dir)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("generator failed: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("generator failed: %w", err)
	}

	return &Result{SourceDir: dir, keep: opts.KeepTemp, own: own}, nil
}
