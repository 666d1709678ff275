// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package model

// Reachable returns the names of all types transitively reachable from
// root, root first, in first-encounter order over field declarations.
// Enums reachable through a field are included as leaves. A visited set
// keyed by type name keeps traversal finite on cyclic and self-referencing
// graphs.
func Reachable(models map[string]*Model, root string) ([]string, error) {
	start, ok := models[root]
	if !ok {
		return nil, &UnknownRootError{Root: root}
	}

	visited := make(map[string]bool)
	var order []string

	var visit func(m *Model)
	visit = func(m *Model) {
		if visited[m.Name] {
			return
		}
		visited[m.Name] = true
		order = append(order, m.Name)
		for _, f := range m.Fields {
			switch f.Type.Kind {
			case KindRecord:
				visit(f.Type.Record)
			case KindEnum:
				if !visited[f.Type.Enum.Name] {
					visited[f.Type.Enum.Name] = true
					order = append(order, f.Type.Enum.Name)
				}
			}
		}
	}
	visit(start)

	return order, nil
}

// Referenced returns the set of type names that appear as a field's type
// anywhere in the reachable subgraph of root. The root itself is a member
// only if some reachable field points back at it.
func Referenced(models map[string]*Model, root string) (map[string]bool, error) {
	names, err := Reachable(models, root)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]bool)
	for _, name := range names {
		m, ok := models[name]
		if !ok {
			continue // enum leaf
		}
		for _, f := range m.Fields {
			switch f.Type.Kind {
			case KindRecord:
				refs[f.Type.Record.Name] = true
			case KindEnum:
				refs[f.Type.Enum.Name] = true
			}
		}
	}
	return refs, nil
}
