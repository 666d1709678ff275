// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

// Package gotypes emits Go struct definitions for the resolved types
// reachable from the chosen root.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nokout/wsdl2schema/internal/catalog"
	"github.com/nokout/wsdl2schema/internal/model"
	"github.com/nokout/wsdl2schema/internal/render"
	"github.com/nokout/wsdl2schema/internal/synth"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "gotypes.go.tmpl"))

func init() {
	render.Register(&Renderer{})
}

// Renderer writes a single Go source file of struct and enum definitions.
type Renderer struct{}

// Name returns the renderer identifier.
func (r *Renderer) Name() string { return "gotypes" }

// Description is shown by the formats command.
func (r *Renderer) Description() string {
	return "Go struct definitions for the reachable type set"
}

type fileData struct {
	Package         string
	Root            string
	NeedsTimeImport bool
	Types           []typeDef
	Enums           []enumDef
}

type typeDef struct {
	Name   string
	Fields []fieldDef
}

type fieldDef struct {
	Name string
	Type string
	Tag  string
}

type enumDef struct {
	Name   string
	Values []enumValue
}

type enumValue struct {
	Const   string
	Literal string
}

// Render emits the reachable types as Go source named <root>.go. The
// output directory's base name doubles as the package name.
func (r *Renderer) Render(models map[string]*model.Model, root, outDir string) ([]string, error) {
	names, err := model.Reachable(models, root)
	if err != nil {
		return nil, err
	}

	data := fileData{
		Package: filepath.Base(outDir),
		Root:    root,
	}
	enums := enumIndex(models)
	for _, name := range names {
		if m, ok := models[name]; ok {
			td, needsTime := structDef(m)
			data.Types = append(data.Types, td)
			data.NeedsTimeImport = data.NeedsTimeImport || needsTime
			continue
		}
		e, ok := enums[name]
		if !ok {
			return nil, &synth.SynthesisError{Type: name, Reason: "reachable type has no definition"}
		}
		data.Enums = append(data.Enums, e)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	outFile := filepath.Join(outDir, strings.ToLower(root)+".go")
	if err := os.WriteFile(outFile, buf.Bytes(), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return []string{outFile}, nil
}

func enumIndex(models map[string]*model.Model) map[string]enumDef {
	idx := make(map[string]enumDef)
	for _, m := range models {
		for _, f := range m.Fields {
			if f.Type.Kind != model.KindEnum {
				continue
			}
			e := f.Type.Enum
			if _, ok := idx[e.Name]; ok {
				continue
			}
			def := enumDef{Name: toPascalCase(e.Name)}
			for _, v := range e.Values {
				def.Values = append(def.Values, enumValue{
					Const:   def.Name + toPascalCase(v),
					Literal: v,
				})
			}
			idx[e.Name] = def
		}
	}
	return idx
}

func structDef(m *model.Model) (typeDef, bool) {
	td := typeDef{Name: toPascalCase(m.Name)}
	needsTime := false
	for _, f := range m.Fields {
		goType := refType(f.Type)
		if strings.Contains(goType, "time.Time") {
			needsTime = true
		}

		tag := f.Name
		if f.Cardinality == catalog.Repeated {
			goType = "[]" + goType
		}
		if !f.Required() && f.Cardinality != catalog.Repeated {
			goType = "*" + goType
			tag += ",omitempty"
		}

		td.Fields = append(td.Fields, fieldDef{
			Name: toPascalCase(f.Name),
			Type: goType,
			Tag:  "`json:\"" + tag + "\"`",
		})
	}
	return td, needsTime
}

func refType(ref model.TypeRef) string {
	switch ref.Kind {
	case model.KindRecord:
		return toPascalCase(ref.Record.Name)
	case model.KindEnum:
		return toPascalCase(ref.Enum.Name)
	case model.KindPrimitive:
		return primitiveType(ref.Primitive)
	default:
		return "any"
	}
}

func primitiveType(p model.Primitive) string {
	switch p {
	case model.String, model.Decimal:
		return "string"
	case model.Integer:
		return "int64"
	case model.Number:
		return "float64"
	case model.Boolean:
		return "bool"
	case model.Date, model.DateTime:
		return "time.Time"
	case model.Bytes:
		return "[]byte"
	default:
		return "any"
	}
}

// toPascalCase converts a snake_case or camelCase string to PascalCase.
// It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL).
func toPascalCase(s string) string {
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"uri":  "URI",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
