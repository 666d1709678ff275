// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package model

import (
	"log/slog"

	"github.com/nokout/wsdl2schema/internal/catalog"
)

// primitives maps raw annotations to primitive kinds. Both the generator's
// Go spellings and the bare kind names are recognized.
var primitives = map[string]Primitive{
	"string":          String,
	"int":             Integer,
	"int32":           Integer,
	"int64":           Integer,
	"integer":         Integer,
	"float32":         Number,
	"float64":         Number,
	"number":          Number,
	"decimal":         Decimal,
	"decimal.Decimal": Decimal,
	"bool":            Boolean,
	"boolean":         Boolean,
	"date":            Date,
	"xsdtypes.Date":   Date,
	"dateTime":        DateTime,
	"time.Time":       DateTime,
	"bytes":           Bytes,
	"[]byte":          Bytes,
}

// Build resolves a catalog into a map of named models.
//
// Phase one (shell) registers an empty placeholder model for every record
// in a shared symbol table that already holds every enum and primitive
// kind, so any reference found during phase two has a live target no
// matter what order records were declared in. Phase two (fill) resolves
// each field's raw annotation against that table and attaches the handle.
// A final pass re-checks that no placeholder handle survived; cyclic and
// self references are valid by then because the table holds their
// fully-filled neighbors.
//
// Failure is fatal: there is no partial model set.
func Build(cat *catalog.Catalog) (map[string]*Model, error) {
	table := make(map[string]TypeRef, cat.Len()+len(primitives))
	for raw, p := range primitives {
		table[raw] = TypeRef{Kind: KindPrimitive, Primitive: p}
	}
	for _, e := range cat.Enums() {
		table[e.Name] = TypeRef{Kind: KindEnum, Enum: e}
	}

	// Shell phase.
	models := make(map[string]*Model, cat.Len())
	for _, r := range cat.Records() {
		m := &Model{Name: r.Name}
		models[r.Name] = m
		table[r.Name] = TypeRef{Kind: KindRecord, Record: m}
	}

	// Fill phase.
	for _, r := range cat.Records() {
		m := models[r.Name]
		for _, fd := range r.Fields {
			ref, ok := table[fd.RawType]
			if !ok {
				return nil, &UnresolvedReferenceError{
					Model:      r.Name,
					Field:      fd.Name,
					Annotation: fd.RawType,
				}
			}
			m.Fields = append(m.Fields, Field{
				Name:           fd.Name,
				Type:           ref,
				Cardinality:    fd.Cardinality,
				HasDefault:     fd.HasDefault,
				Default:        fd.Default,
				DefaultFactory: fd.DefaultFactory,
			})
		}
	}

	// Finalization: every attached handle must be concrete.
	for _, m := range models {
		for _, f := range m.Fields {
			if f.Type.Kind == KindUnresolved {
				return nil, &UnresolvedReferenceError{Model: m.Name, Field: f.Name, Annotation: "<unresolved>"}
			}
		}
	}

	slog.Debug("resolved model graph", "records", len(models), "enums", len(cat.Enums()))
	return models, nil
}
