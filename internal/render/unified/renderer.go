// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package unified renders one self-contained schema document with the
// root type inline and all dependencies under $defs.
package unified

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nokout/wsdl2schema/internal/model"
	"github.com/nokout/wsdl2schema/internal/render"
	"github.com/nokout/wsdl2schema/internal/synth"
)

func init() {
	render.Register(&Renderer{})
}

// Renderer writes schema.json plus a summary.json companion.
type Renderer struct{}

// Name returns the renderer identifier.
func (r *Renderer) Name() string { return "unified" }

// Description is shown by the formats command.
func (r *Renderer) Description() string {
	return "single JSON Schema document, root inline, dependencies in $defs"
}

// summary mirrors the companion file the original pipeline wrote next to
// its unified schema.
type summary struct {
	MainModel   string   `json:"main_model"`
	TotalModels int      `json:"total_models"`
	SchemaFile  string   `json:"schema_file"`
	NestedTypes int      `json:"nested_types"`
	Models      []string `json:"models"`
}

// Render synthesizes the unified document and writes it with its summary.
func (r *Renderer) Render(models map[string]*model.Model, root, outDir string) ([]string, error) {
	doc, err := synth.Unified(models, root)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	schemaPath := filepath.Join(outDir, "schema.json")
	if err := writeJSON(schemaPath, doc); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	summaryPath := filepath.Join(outDir, "summary.json")
	if err := writeJSON(summaryPath, summary{
		MainModel:   root,
		TotalModels: len(models),
		SchemaFile:  schemaPath,
		NestedTypes: len(doc.Defs),
		Models:      names,
	}); err != nil {
		return nil, err
	}

	return []string{schemaPath, summaryPath}, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
