// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package model resolves catalog definitions into a runtime model graph.
// Resolution is two-phase so that forward, mutual, and self references
// work regardless of declaration order.
package model

import (
	"fmt"

	"github.com/nokout/wsdl2schema/internal/catalog"
)

// Primitive is a supported scalar kind.
type Primitive string

const (
	String   Primitive = "string"
	Integer  Primitive = "integer"
	Number   Primitive = "number"
	Decimal  Primitive = "decimal"
	Boolean  Primitive = "boolean"
	Date     Primitive = "date"
	DateTime Primitive = "dateTime"
	Bytes    Primitive = "bytes"
)

// Kind discriminates what a TypeRef points at.
type Kind int

const (
	// KindUnresolved is the zero value: a placeholder that must not
	// survive the fill phase.
	KindUnresolved Kind = iota
	KindPrimitive
	KindRecord
	KindEnum
)

// TypeRef is a resolved handle to a field's type: a primitive kind, a
// record model, or an enum definition.
type TypeRef struct {
	Kind      Kind
	Primitive Primitive
	Record    *Model
	Enum      *catalog.Enum
}

// Name returns the referenced type's name for diagnostics.
func (r TypeRef) Name() string {
	switch r.Kind {
	case KindPrimitive:
		return string(r.Primitive)
	case KindRecord:
		return r.Record.Name
	case KindEnum:
		return r.Enum.Name
	default:
		return "<unresolved>"
	}
}

// Field is the resolved counterpart of a catalog field descriptor.
type Field struct {
	Name           string
	Type           TypeRef
	Cardinality    catalog.Cardinality
	HasDefault     bool
	Default        any
	DefaultFactory bool
}

// Required mirrors the catalog requiredness policy: no default of any
// kind and not optional.
func (f Field) Required() bool {
	return !f.HasDefault && !f.DefaultFactory && f.Cardinality != catalog.Optional
}

// Model is the resolved runtime counterpart of a record definition: same
// name, same field order, every type reference replaced by a concrete
// handle. Models are immutable once Build returns.
type Model struct {
	Name   string
	Fields []Field
}

// UnresolvedReferenceError reports a field annotation that matched no
// record, enum, or primitive kind after both resolution phases.
type UnresolvedReferenceError struct {
	Model      string
	Field      string
	Annotation string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("model %s field %s: unresolved type reference %q", e.Model, e.Field, e.Annotation)
}

// UnknownRootError reports a root type name absent from the model map.
type UnknownRootError struct {
	Root string
}

func (e *UnknownRootError) Error() string {
	return fmt.Sprintf("unknown root type %q", e.Root)
}
