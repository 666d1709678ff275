// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package render provides the output format registry. Renderers consume
// the resolved model set and write documents; they never mutate it.
package render

import (
	"fmt"
	"sort"

	"github.com/nokout/wsdl2schema/internal/model"
)

// Renderer defines the interface all output formats must implement.
type Renderer interface {
	// Name returns the renderer's identifier (e.g., "unified", "gotypes").
	Name() string

	// Description is a one-line summary shown by the formats command.
	Description() string

	// Render writes output for the resolved models with the given root
	// type into outDir and returns the paths of the files it wrote.
	Render(models map[string]*model.Model, root, outDir string) ([]string, error)
}

var renderers = make(map[string]Renderer)

// Register adds a renderer to the registry.
func Register(r Renderer) {
	renderers[r.Name()] = r
}

// Get retrieves a renderer by name.
func Get(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return r, nil
}

// Available returns all registered renderer names, sorted.
func Available() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description for a registered renderer name.
func Describe(name string) string {
	if r, ok := renderers[name]; ok {
		return r.Description()
	}
	return ""
}
