// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package catalog holds the record and enumeration definitions discovered
// from generator output. It is pure data: later pipeline stages never reach
// back into the generated source.
package catalog

import "fmt"

// Cardinality describes how many values a field carries.
type Cardinality int

const (
	// Single is a plain scalar or record-valued field.
	Single Cardinality = iota
	// Optional is a field that may be absent (pointer-typed in source).
	Optional
	// Repeated is a slice-typed field.
	Repeated
)

// String returns the cardinality name used in diagnostics.
func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	default:
		return fmt.Sprintf("cardinality(%d)", int(c))
	}
}

// Field describes a single field of a record definition.
// RawType is the unresolved type annotation (e.g. "CustomerType" or
// "string") that the model builder matches against its symbol table.
type Field struct {
	Name        string
	RawType     string
	Cardinality Cardinality

	// HasDefault reports whether the field carries an explicit default
	// value. DefaultFactory marks an implicit empty-collection default,
	// which repeated fields receive at load time.
	HasDefault     bool
	Default        any
	DefaultFactory bool
}

// Required reports whether the field must be present: no default of any
// kind and not optional. Repeated fields normally carry an implicit
// empty-collection factory, so they are not required unless that factory
// has been cleared.
func (f Field) Required() bool {
	return !f.HasDefault && !f.DefaultFactory && f.Cardinality != Optional
}

// Record is a named aggregate of ordered fields. Records may reference
// themselves or each other in cycles; the catalog stores such references
// untouched as raw annotations.
type Record struct {
	Name   string
	Fields []Field
}

// Enum is a named closed set of literal string values. Enums pass through
// the pipeline as-is and are never converted into record form.
type Enum struct {
	Name   string
	Values []string
}

// Catalog maps names to record and enum definitions. Names are unique
// across both kinds. A Catalog is built once by Load and immutable after.
type Catalog struct {
	records map[string]*Record
	enums   map[string]*Enum
	order   []string // declaration order of all names
}

// Record returns the record definition with the given name, if present.
func (c *Catalog) Record(name string) (*Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Enum returns the enum definition with the given name, if present.
func (c *Catalog) Enum(name string) (*Enum, bool) {
	e, ok := c.enums[name]
	return e, ok
}

// Records returns all record definitions in declaration order.
func (c *Catalog) Records() []*Record {
	out := make([]*Record, 0, len(c.records))
	for _, name := range c.order {
		if r, ok := c.records[name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Enums returns all enum definitions in declaration order.
func (c *Catalog) Enums() []*Enum {
	out := make([]*Enum, 0, len(c.enums))
	for _, name := range c.order {
		if e, ok := c.enums[name]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the total number of definitions.
func (c *Catalog) Len() int {
	return len(c.order)
}

func (c *Catalog) add(name string) error {
	if _, ok := c.records[name]; ok {
		return fmt.Errorf("duplicate definition %q", name)
	}
	if _, ok := c.enums[name]; ok {
		return fmt.Errorf("duplicate definition %q", name)
	}
	c.order = append(c.order, name)
	return nil
}

func (c *Catalog) addRecord(r *Record) error {
	if err := c.add(r.Name); err != nil {
		return err
	}
	c.records[r.Name] = r
	return nil
}

func (c *Catalog) addEnum(e *Enum) error {
	if err := c.add(e.Name); err != nil {
		return err
	}
	c.enums[e.Name] = e
	return nil
}

func newCatalog() *Catalog {
	return &Catalog{
		records: make(map[string]*Record),
		enums:   make(map[string]*Enum),
	}
}

// New builds a Catalog from already-materialized definitions, preserving
// the given order. Callers that introspect generated source should use
// Load instead.
func New(records []*Record, enums []*Enum) (*Catalog, error) {
	c := newCatalog()
	for _, r := range records {
		if err := c.addRecord(r); err != nil {
			return nil, err
		}
	}
	for _, e := range enums {
		if err := c.addEnum(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}
