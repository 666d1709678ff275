// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package synth

import (
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// IndexEntry names one generated document and the file it is expected to
// land in.
type IndexEntry struct {
	Name     string `json:"name"`
	FileHint string `json:"fileHint"`
}

// Index enumerates a document set in stable lexicographic order by type
// name. It is a convenience projection for downstream tooling, not part
// of the schema model itself.
func Index(docs map[string]*jsonschema.Schema) []IndexEntry {
	entries := make([]IndexEntry, 0, len(docs))
	for name := range docs {
		entries = append(entries, IndexEntry{
			Name:     name,
			FileHint: name + ".schema.json",
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
