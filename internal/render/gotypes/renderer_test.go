// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package gotypes

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokout/wsdl2schema/internal/catalog"
	"github.com/nokout/wsdl2schema/internal/model"
)

func buildModels(t *testing.T, records []*catalog.Record, enums []*catalog.Enum) map[string]*model.Model {
	t.Helper()
	cat, err := catalog.New(records, enums)
	require.NoError(t, err)
	models, err := model.Build(cat)
	require.NoError(t, err)
	return models
}

func TestRender(t *testing.T) {
	models := buildModels(t, []*catalog.Record{
		{Name: "Order", Fields: []catalog.Field{
			{Name: "customer", RawType: "Customer"},
			{Name: "items", RawType: "Product", Cardinality: catalog.Repeated, DefaultFactory: true},
			{Name: "note", RawType: "string", Cardinality: catalog.Optional},
			{Name: "created_at", RawType: "time.Time"},
		}},
		{Name: "Customer", Fields: []catalog.Field{{Name: "name", RawType: "string"}}},
		{Name: "Product", Fields: []catalog.Field{
			{Name: "sku", RawType: "string"},
			{Name: "status", RawType: "StatusType"},
		}},
	}, []*catalog.Enum{
		{Name: "StatusType", Values: []string{"pending", "shipped"}},
	})

	outDir := filepath.Join(t.TempDir(), "ordertypes")
	files, err := (&Renderer{}).Render(models, "Order", outDir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(outDir, "order.go")}, files)

	src, err := os.ReadFile(files[0])
	require.NoError(t, err)
	out := string(src)

	// Output must be valid Go source in a package named after the dir.
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "order.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "ordertypes", f.Name.Name)

	assert.Contains(t, out, "type Order struct")
	assert.Contains(t, out, "type Customer struct")
	assert.Contains(t, out, "type Product struct")
	assert.Contains(t, out, "Items []Product")
	assert.Contains(t, out, "Note *string")
	assert.Contains(t, out, "`json:\"note,omitempty\"`")
	assert.Contains(t, out, "CreatedAt time.Time")
	assert.Contains(t, out, `"time"`)

	assert.Contains(t, out, "type StatusType string")
	assert.Contains(t, out, `StatusTypePending StatusType = "pending"`)
	assert.Contains(t, out, `StatusTypeShipped StatusType = "shipped"`)
}

func TestRender_NoTimeImport(t *testing.T) {
	models := buildModels(t, []*catalog.Record{
		{Name: "Rec", Fields: []catalog.Field{{Name: "name", RawType: "string"}}},
	}, nil)

	outDir := filepath.Join(t.TempDir(), "plain")
	files, err := (&Renderer{}).Render(models, "Rec", outDir)
	require.NoError(t, err)

	src, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.NotContains(t, string(src), `"time"`)
}

func TestRender_UnknownRoot(t *testing.T) {
	models := buildModels(t, []*catalog.Record{
		{Name: "Rec", Fields: []catalog.Field{{Name: "name", RawType: "string"}}},
	}, nil)

	_, err := (&Renderer{}).Render(models, "Missing", t.TempDir())
	require.Error(t, err)

	var unknown *model.UnknownRootError
	assert.ErrorAs(t, err, &unknown)
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"order_id", "OrderID"},
		{"created_at", "CreatedAt"},
		{"api_url", "APIURL"},
		{"customer", "Customer"},
		{"OrderType", "OrderType"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toPascalCase(tt.in), tt.in)
	}
}
