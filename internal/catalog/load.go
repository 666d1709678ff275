// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package catalog

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// LoadError indicates the generated source could not be turned into a
// catalog: unreadable files, unparseable Go source, unsupported field
// shapes, or no record types at all.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "catalog load: " + e.Reason
	}
	return fmt.Sprintf("catalog load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load builds a Catalog from a filesystem of generated Go source.
// Every top-level struct type becomes a record definition; every string
// type with an accompanying const block becomes an enum definition.
// Field type references are kept as raw annotations and resolved later by
// the model builder, so declaration order and cross-file cycles do not
// matter here.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := sourceFiles(fsys)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, &LoadError{Reason: "no Go source files found"}
	}

	cat := newCatalog()
	// Enum values can be declared in a different file than the enum type,
	// so collect const literals across the whole set first.
	enumValues := make(map[string][]string)
	var enumNames []string

	fset := token.NewFileSet()
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, &LoadError{Path: path, Reason: "read failed", Err: err}
		}
		file, err := parser.ParseFile(fset, path, data, parser.SkipObjectResolution)
		if err != nil {
			return nil, &LoadError{Path: path, Reason: "parse failed", Err: err}
		}
		names, err := collectFile(cat, file, path, enumValues)
		if err != nil {
			return nil, err
		}
		enumNames = append(enumNames, names...)
	}

	for _, name := range enumNames {
		if err := cat.addEnum(&Enum{Name: name, Values: enumValues[name]}); err != nil {
			return nil, &LoadError{Reason: err.Error()}
		}
	}

	if len(cat.records) == 0 {
		return nil, &LoadError{Reason: "generator output contains no record types"}
	}
	return cat, nil
}

func sourceFiles(fsys fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, &LoadError{Reason: "walk failed", Err: err}
	}
	sort.Strings(paths)
	return paths, nil
}

// collectFile adds the file's struct types to the catalog, records enum
// const values into enumValues, and returns enum type names declared here.
func collectFile(cat *Catalog, file *ast.File, path string, enumValues map[string][]string) ([]string, error) {
	var enumNames []string

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		switch gen.Tok {
		case token.TYPE:
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				switch t := ts.Type.(type) {
				case *ast.StructType:
					rec, err := structRecord(ts.Name.Name, t, path)
					if err != nil {
						return nil, err
					}
					if err := cat.addRecord(rec); err != nil {
						return nil, &LoadError{Path: path, Reason: err.Error()}
					}
				case *ast.Ident:
					if t.Name == "string" {
						enumNames = append(enumNames, ts.Name.Name)
					}
				}
			}
		case token.CONST:
			collectEnumConsts(gen, enumValues)
		}
	}
	return enumNames, nil
}

func collectEnumConsts(gen *ast.GenDecl, enumValues map[string][]string) {
	for _, spec := range gen.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		typ, ok := vs.Type.(*ast.Ident)
		if !ok {
			continue
		}
		for _, v := range vs.Values {
			lit, ok := v.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			val, err := strconv.Unquote(lit.Value)
			if err != nil {
				continue
			}
			enumValues[typ.Name] = append(enumValues[typ.Name], val)
		}
	}
}

func structRecord(name string, st *ast.StructType, path string) (*Record, error) {
	rec := &Record{Name: name}
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			// Embedded fields do not occur in generator output.
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("record %s: embedded field not supported", name)}
		}
		for _, ident := range f.Names {
			fd, err := fieldDescriptor(ident.Name, f, name, path)
			if err != nil {
				return nil, err
			}
			rec.Fields = append(rec.Fields, fd)
		}
	}
	return rec, nil
}

func fieldDescriptor(fieldName string, f *ast.Field, recordName, path string) (Field, error) {
	raw, card, err := typeAnnotation(f.Type)
	if err != nil {
		return Field{}, &LoadError{
			Path:   path,
			Reason: fmt.Sprintf("record %s field %s: %v", recordName, fieldName, err),
		}
	}

	fd := Field{Name: fieldName, RawType: raw, Cardinality: card}
	if card == Repeated {
		// Matches the generator's empty-collection default for slices.
		fd.DefaultFactory = true
	}
	if f.Tag != nil {
		tag, err := strconv.Unquote(f.Tag.Value)
		if err == nil {
			if def, ok := reflect.StructTag(tag).Lookup("default"); ok {
				fd.HasDefault = true
				fd.Default = parseDefault(def)
			}
		}
	}
	return fd, nil
}

// typeAnnotation reduces a field's type expression to a raw annotation and
// cardinality. "[]byte" is a primitive, not a repeated field.
func typeAnnotation(expr ast.Expr) (string, Cardinality, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, Single, nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", Single, fmt.Errorf("unsupported selector type")
		}
		return pkg.Name + "." + t.Sel.Name, Single, nil
	case *ast.StarExpr:
		raw, card, err := typeAnnotation(t.X)
		if err != nil {
			return "", Single, err
		}
		if card != Single {
			return "", Single, fmt.Errorf("pointer to %s type not supported", card)
		}
		return raw, Optional, nil
	case *ast.ArrayType:
		if t.Len != nil {
			return "", Single, fmt.Errorf("fixed-size array not supported")
		}
		if elt, ok := t.Elt.(*ast.Ident); ok && elt.Name == "byte" {
			return "[]byte", Single, nil
		}
		raw, card, err := typeAnnotation(t.Elt)
		if err != nil {
			return "", Single, err
		}
		if card != Single {
			return "", Single, fmt.Errorf("nested %s element not supported", card)
		}
		return raw, Repeated, nil
	default:
		return "", Single, fmt.Errorf("unsupported type expression %T", expr)
	}
}

// parseDefault interprets a default tag literal: bools and numbers keep
// their natural type, everything else stays a string.
func parseDefault(s string) any {
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
