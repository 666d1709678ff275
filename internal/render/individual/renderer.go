// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package individual renders one self-contained schema document per
// record type, plus an index.json enumerating them.
package individual

import (
	"encoding/json"
	"fmt"
	"log/slog"
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

// Renderer writes <Type>.schema.json files and an index.json.
type Renderer struct{}

// Name returns the renderer identifier.
func (r *Renderer) Name() string { return "individual" }

// Description is shown by the formats command.
func (r *Renderer) Description() string {
	return "one self-contained JSON Schema document per type, with index.json"
}

// Render synthesizes a document for every record type. A failure in one
// document is logged and skipped; sibling documents still complete. The
// root argument is unused: every type is its own root here.
func (r *Renderer) Render(models map[string]*model.Model, _, outDir string) ([]string, error) {
	roots := make([]string, 0, len(models))
	for name := range models {
		roots = append(roots, name)
	}
	sort.Strings(roots)

	docs, failures := synth.Individual(models, roots)
	for _, root := range roots {
		if err := failures[root]; err != nil {
			slog.Warn("skipping document", "type", root, "error", err)
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents could be generated for %d types", len(roots))
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	index := synth.Index(docs)
	files := make([]string, 0, len(index)+1)
	for _, entry := range index {
		path := filepath.Join(outDir, entry.FileHint)
		if err := writeJSON(path, docs[entry.Name]); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	indexPath := filepath.Join(outDir, "index.json")
	if err := writeJSON(indexPath, index); err != nil {
		return nil, err
	}
	files = append(files, indexPath)

	return files, nil
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
