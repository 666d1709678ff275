// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nokout

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokout/wsdl2schema/internal/catalog"
)

func TestNew_PreservesOrder(t *testing.T) {
	cat, err := catalog.New(
		[]*catalog.Record{
			{Name: "Order"},
			{Name: "Customer"},
		},
		[]*catalog.Enum{
			{Name: "Status", Values: []string{"open", "closed"}},
		},
	)
	require.NoError(t, err)

	records := cat.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Order", records[0].Name)
	assert.Equal(t, "Customer", records[1].Name)

	enums := cat.Enums()
	require.Len(t, enums, 1)
	assert.Equal(t, "Status", enums[0].Name)
	assert.Equal(t, 3, cat.Len())
}

func TestNew_DuplicateNames(t *testing.T) {
	tests := []struct {
		name    string
		records []*catalog.Record
		enums   []*catalog.Enum
	}{
		{
			name:    "two records",
			records: []*catalog.Record{{Name: "Order"}, {Name: "Order"}},
		},
		{
			name:    "record and enum",
			records: []*catalog.Record{{Name: "Status"}},
			enums:   []*catalog.Enum{{Name: "Status"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(tt.records, tt.enums)
			assert.ErrorContains(t, err, "duplicate definition")
		})
	}
}

func TestField_Required(t *testing.T) {
	tests := []struct {
		name  string
		field catalog.Field
		want  bool
	}{
		{"plain single", catalog.Field{Name: "a", Cardinality: catalog.Single}, true},
		{"optional", catalog.Field{Name: "a", Cardinality: catalog.Optional}, false},
		{"single with default", catalog.Field{Name: "a", HasDefault: true, Default: "x"}, false},
		{"repeated with factory", catalog.Field{Name: "a", Cardinality: catalog.Repeated, DefaultFactory: true}, false},
		{"repeated without factory", catalog.Field{Name: "a", Cardinality: catalog.Repeated}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Required())
		})
	}
}

func TestCardinality_String(t *testing.T) {
	assert.Equal(t, "single", catalog.Single.String())
	assert.Equal(t, "optional", catalog.Optional.String())
	assert.Equal(t, "repeated", catalog.Repeated.String())
}

func TestLookup(t *testing.T) {
	cat, err := catalog.New(
		[]*catalog.Record{{Name: "Order"}},
		[]*catalog.Enum{{Name: "Status"}},
	)
	require.NoError(t, err)

	r, ok := cat.Record("Order")
	require.True(t, ok)
	assert.Equal(t, "Order", r.Name)

	_, ok = cat.Record("Status")
	assert.False(t, ok)

	e, ok := cat.Enum("Status")
	require.True(t, ok)
	assert.Equal(t, "Status", e.Name)

	_, ok = cat.Enum("Order")
	assert.False(t, ok)
}
