// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package synth_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokout/wsdl2schema/internal/catalog"
	"github.com/nokout/wsdl2schema/internal/model"
	"github.com/nokout/wsdl2schema/internal/synth"
)

func buildModels(t *testing.T, records []*catalog.Record, enums []*catalog.Enum) map[string]*model.Model {
	t.Helper()
	cat, err := catalog.New(records, enums)
	require.NoError(t, err)
	models, err := model.Build(cat)
	require.NoError(t, err)
	return models
}

// orderModels is the canonical three-record graph: Order holds a required
// Customer and a repeated Product list, plus a defaulted status string.
func orderModels(t *testing.T) map[string]*model.Model {
	t.Helper()
	return buildModels(t, []*catalog.Record{
		{Name: "Order", Fields: []catalog.Field{
			{Name: "customer", RawType: "Customer"},
			{Name: "items", RawType: "Product", Cardinality: catalog.Repeated, DefaultFactory: true},
			{Name: "status", RawType: "string", HasDefault: true, Default: "pending"},
		}},
		{Name: "Customer", Fields: []catalog.Field{
			{Name: "name", RawType: "string"},
			{Name: "email", RawType: "string", Cardinality: catalog.Optional},
		}},
		{Name: "Product", Fields: []catalog.Field{
			{Name: "sku", RawType: "string"},
			{Name: "price", RawType: "decimal.Decimal"},
		}},
	}, nil)
}

func TestUnified_OrderGraph(t *testing.T) {
	doc, err := synth.Unified(orderModels(t), "Order")
	require.NoError(t, err)

	assert.Equal(t, "Order", doc.Title)
	assert.Equal(t, "object", doc.Type)

	// Root fields render inline at the top level.
	require.Contains(t, doc.Properties, "customer")
	assert.Equal(t, "#/$defs/Customer", doc.Properties["customer"].Ref)

	items := doc.Properties["items"]
	require.NotNil(t, items)
	assert.Equal(t, "array", items.Type)
	require.NotNil(t, items.Items)
	assert.Equal(t, "#/$defs/Product", items.Items.Ref)

	status := doc.Properties["status"]
	require.NotNil(t, status)
	assert.Equal(t, "string", status.Type)
	assert.Equal(t, json.RawMessage(`"pending"`), status.Default)

	// customer is the only required field: items carries a collection
	// factory and status carries a default.
	assert.Equal(t, []string{"customer"}, doc.Required)

	// $defs holds every reachable dependency exactly once, not the root.
	require.Len(t, doc.Defs, 2)
	require.Contains(t, doc.Defs, "Customer")
	require.Contains(t, doc.Defs, "Product")

	customer := doc.Defs["Customer"]
	assert.Equal(t, "object", customer.Type)
	assert.Equal(t, []string{"name"}, customer.Required)

	product := doc.Defs["Product"]
	assert.Equal(t, "number", product.Properties["price"].Type)
}

func TestUnified_SharedDependencyOnce(t *testing.T) {
	// Three records all point at Shared; it must appear once under $defs
	// and three times as a pointer.
	models := buildModels(t, []*catalog.Record{
		{Name: "Root", Fields: []catalog.Field{
			{Name: "a", RawType: "A"},
			{Name: "b", RawType: "B"},
			{Name: "direct", RawType: "Shared"},
		}},
		{Name: "A", Fields: []catalog.Field{{Name: "s", RawType: "Shared"}}},
		{Name: "B", Fields: []catalog.Field{{Name: "s", RawType: "Shared"}}},
		{Name: "Shared", Fields: []catalog.Field{{Name: "id", RawType: "string"}}},
	}, nil)

	doc, err := synth.Unified(models, "Root")
	require.NoError(t, err)

	require.Len(t, doc.Defs, 3)
	require.Contains(t, doc.Defs, "Shared")
	assert.Equal(t, "#/$defs/Shared", doc.Properties["direct"].Ref)
	assert.Equal(t, "#/$defs/Shared", doc.Defs["A"].Properties["s"].Ref)
	assert.Equal(t, "#/$defs/Shared", doc.Defs["B"].Properties["s"].Ref)
}

func TestUnified_SelfReferencingRoot(t *testing.T) {
	models := buildModels(t, []*catalog.Record{
		{Name: "Category", Fields: []catalog.Field{
			{Name: "name", RawType: "string"},
			{Name: "children", RawType: "Category", Cardinality: catalog.Repeated, DefaultFactory: true},
		}},
	}, nil)

	doc, err := synth.Unified(models, "Category")
	require.NoError(t, err)

	// The root re-enters $defs so its own pointer stays resolvable.
	require.Contains(t, doc.Defs, "Category")
	assert.Equal(t, "#/$defs/Category", doc.Properties["children"].Items.Ref)
	assert.Equal(t, "#/$defs/Category", doc.Defs["Category"].Properties["children"].Items.Ref)
}

func TestUnified_EnumDefinition(t *testing.T) {
	models := buildModels(t, []*catalog.Record{
		{Name: "Order", Fields: []catalog.Field{
			{Name: "status", RawType: "StatusType"},
		}},
	}, []*catalog.Enum{
		{Name: "StatusType", Values: []string{"pending", "shipped", "delivered"}},
	})

	doc, err := synth.Unified(models, "Order")
	require.NoError(t, err)

	assert.Equal(t, "#/$defs/StatusType", doc.Properties["status"].Ref)

	def := doc.Defs["StatusType"]
	require.NotNil(t, def)
	assert.Equal(t, "string", def.Type)
	assert.Equal(t, []any{"pending", "shipped", "delivered"}, def.Enum)
}

func TestUnified_PrimitiveFormats(t *testing.T) {
	models := buildModels(t, []*catalog.Record{
		{Name: "Rec", Fields: []catalog.Field{
			{Name: "count", RawType: "int64"},
			{Name: "ok", RawType: "bool"},
			{Name: "day", RawType: "date"},
			{Name: "at", RawType: "time.Time"},
			{Name: "blob", RawType: "[]byte"},
		}},
	}, nil)

	doc, err := synth.Unified(models, "Rec")
	require.NoError(t, err)

	assert.Equal(t, "integer", doc.Properties["count"].Type)
	assert.Equal(t, "boolean", doc.Properties["ok"].Type)
	assert.Equal(t, "date", doc.Properties["day"].Format)
	assert.Equal(t, "date-time", doc.Properties["at"].Format)
	assert.Equal(t, "byte", doc.Properties["blob"].Format)
	assert.Empty(t, doc.Defs)
}

func TestUnified_UnknownRoot(t *testing.T) {
	doc, err := synth.Unified(orderModels(t), "Missing")
	require.Error(t, err)
	assert.Nil(t, doc, "no partial document on failure")

	var unknown *model.UnknownRootError
	assert.ErrorAs(t, err, &unknown)
}

func TestUnified_RoundTripsThroughJSON(t *testing.T) {
	doc, err := synth.Unified(orderModels(t), "Order")
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Order", decoded["title"])
	defs, ok := decoded["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, defs, 2)
}

func TestIndividual_SelfContainedDocuments(t *testing.T) {
	models := orderModels(t)

	docs, failures := synth.Individual(models, []string{"Order", "Customer", "Product"})
	assert.Empty(t, failures)
	require.Len(t, docs, 3)

	// Each document carries only its own dependencies.
	assert.Len(t, docs["Order"].Defs, 2)
	assert.Empty(t, docs["Customer"].Defs)
	assert.Empty(t, docs["Product"].Defs)
	assert.Equal(t, "Customer", docs["Customer"].Title)
}

func TestIndividual_FailureIsolation(t *testing.T) {
	models := orderModels(t)

	docs, failures := synth.Individual(models, []string{"Order", "Missing", "Customer"})

	require.Len(t, failures, 1)
	var unknown *model.UnknownRootError
	assert.ErrorAs(t, failures["Missing"], &unknown)

	require.Len(t, docs, 2)
	assert.Contains(t, docs, "Order")
	assert.Contains(t, docs, "Customer")
	assert.NotContains(t, docs, "Missing")
}

func TestIndividual_NoRoots(t *testing.T) {
	docs, failures := synth.Individual(orderModels(t), nil)
	assert.Empty(t, docs)
	assert.Empty(t, failures)
}
