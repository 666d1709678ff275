// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package synth renders resolved model graphs into JSON Schema documents.
// Record and enum references become $ref pointers into a shared $defs
// section, which keeps every definition exactly once and makes cyclic
// graphs representable.
package synth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/nokout/wsdl2schema/internal/catalog"
	"github.com/nokout/wsdl2schema/internal/model"
)

// maxRenderDepth caps inline schema nesting. Reference indirection keeps
// real graphs shallow; the guard only catches pathological generator bugs.
const maxRenderDepth = 32

// SynthesisError is a document-level rendering failure. In individual
// mode it is isolated to the document it occurred in.
type SynthesisError struct {
	Type   string
	Reason string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("schema synthesis for %s: %s", e.Type, e.Reason)
}

// Unified renders one self-contained document: the root model inline at
// the top level and every other reachable type exactly once under $defs,
// with field references rendered as "#/$defs/<TypeName>" pointers. The
// root itself also appears under $defs when some reachable field points
// back at it, so self-referencing roots stay resolvable.
func Unified(models map[string]*model.Model, root string) (*jsonschema.Schema, error) {
	reach, err := model.Reachable(models, root)
	if err != nil {
		return nil, err
	}
	refs, err := model.Referenced(models, root)
	if err != nil {
		return nil, err
	}
	enums := enumIndex(models)

	doc, err := renderRecord(models[root])
	if err != nil {
		return nil, err
	}
	doc.Title = root

	defs := make(map[string]*jsonschema.Schema)
	for _, name := range reach {
		if name == root && !refs[root] {
			continue
		}
		def, err := renderNamed(models, enums, name)
		if err != nil {
			return nil, err
		}
		defs[name] = def
	}
	if len(defs) > 0 {
		doc.Defs = defs
	}

	slog.Debug("synthesized unified schema", "root", root, "defs", len(defs))
	return doc, nil
}

// Individual runs unified synthesis once per requested root, each document
// carrying only its own transitive dependencies. The documents have no
// ordering dependency on one another and the model map is read-only, so
// synthesis fans out across a bounded set of workers. Failures are
// isolated: a failed root is reported in the error map and omitted from
// the result map while sibling documents still complete.
func Individual(models map[string]*model.Model, roots []string) (map[string]*jsonschema.Schema, map[string]error) {
	workers := min(runtime.GOMAXPROCS(0), len(roots))
	if workers < 1 {
		workers = 1
	}

	type result struct {
		root string
		doc  *jsonschema.Schema
		err  error
	}

	in := make(chan string)
	out := make(chan result)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for root := range in {
				doc, err := Unified(models, root)
				out <- result{root: root, doc: doc, err: err}
			}
		}()
	}
	go func() {
		for _, root := range roots {
			in <- root
		}
		close(in)
		wg.Wait()
		close(out)
	}()

	docs := make(map[string]*jsonschema.Schema, len(roots))
	failures := make(map[string]error)
	for r := range out {
		if r.err != nil {
			failures[r.root] = r.err
			continue
		}
		docs[r.root] = r.doc
	}
	return docs, failures
}

// enumIndex collects every enum handle attached to any model field, keyed
// by name, so named enum definitions can be rendered without a catalog.
func enumIndex(models map[string]*model.Model) map[string]*jsonschema.Schema {
	idx := make(map[string]*jsonschema.Schema)
	for _, m := range models {
		for _, f := range m.Fields {
			if f.Type.Kind != model.KindEnum {
				continue
			}
			e := f.Type.Enum
			if _, ok := idx[e.Name]; ok {
				continue
			}
			values := make([]any, len(e.Values))
			for i, v := range e.Values {
				values[i] = v
			}
			idx[e.Name] = &jsonschema.Schema{Type: "string", Enum: values}
		}
	}
	return idx
}

func renderNamed(models map[string]*model.Model, enums map[string]*jsonschema.Schema, name string) (*jsonschema.Schema, error) {
	if m, ok := models[name]; ok {
		return renderRecord(m)
	}
	if e, ok := enums[name]; ok {
		// Copy so one document's defs can't alias another's.
		clone := *e
		return &clone, nil
	}
	return nil, &SynthesisError{Type: name, Reason: "reachable type has no definition"}
}

func renderRecord(m *model.Model) (*jsonschema.Schema, error) {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(m.Fields)),
	}
	for _, f := range m.Fields {
		fs, err := renderField(m.Name, f)
		if err != nil {
			return nil, err
		}
		s.Properties[f.Name] = fs
		if f.Required() {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s, nil
}

func renderField(owner string, f model.Field) (*jsonschema.Schema, error) {
	inner, err := renderTypeRef(owner, f.Type, 0)
	if err != nil {
		return nil, err
	}
	if f.Cardinality == catalog.Repeated {
		inner = &jsonschema.Schema{Type: "array", Items: inner}
	}
	if f.HasDefault {
		if raw, err := json.Marshal(f.Default); err == nil {
			inner.Default = json.RawMessage(raw)
		}
	}
	return inner, nil
}

// renderTypeRef renders the singular schema for a resolved type handle:
// a primitive schema or a pointer reference for records and enums.
func renderTypeRef(owner string, ref model.TypeRef, depth int) (*jsonschema.Schema, error) {
	if depth > maxRenderDepth {
		return nil, &SynthesisError{Type: owner, Reason: "render depth exceeded"}
	}
	switch ref.Kind {
	case model.KindRecord:
		return &jsonschema.Schema{Ref: "#/$defs/" + ref.Record.Name}, nil
	case model.KindEnum:
		return &jsonschema.Schema{Ref: "#/$defs/" + ref.Enum.Name}, nil
	case model.KindPrimitive:
		return renderPrimitive(owner, ref.Primitive)
	default:
		return nil, &SynthesisError{Type: owner, Reason: "unresolved type handle"}
	}
}

func renderPrimitive(owner string, p model.Primitive) (*jsonschema.Schema, error) {
	switch p {
	case model.String:
		return &jsonschema.Schema{Type: "string"}, nil
	case model.Integer:
		return &jsonschema.Schema{Type: "integer"}, nil
	case model.Number, model.Decimal:
		return &jsonschema.Schema{Type: "number"}, nil
	case model.Boolean:
		return &jsonschema.Schema{Type: "boolean"}, nil
	case model.Date:
		return &jsonschema.Schema{Type: "string", Format: "date"}, nil
	case model.DateTime:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}, nil
	case model.Bytes:
		return &jsonschema.Schema{Type: "string", Format: "byte"}, nil
	default:
		return nil, &SynthesisError{Type: owner, Reason: fmt.Sprintf("unsupported primitive kind %q", p)}
	}
}
