package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIDAcceptsStringAndNumber(t *testing.T) {
	var recs []Product
	body := `[{"product_id":"1001","product_name":"a"},{"product_id":1002,"product_name":"b"},{"product_id":null}]`
	require.NoError(t, json.Unmarshal([]byte(body), &recs))
	require.Len(t, recs, 3)
	assert.Equal(t, ProductID("1001"), recs[0].ID)
	assert.Equal(t, ProductID("1002"), recs[1].ID)
	assert.Equal(t, ProductID(""), recs[2].ID)
}

func TestProductIDRejectsObject(t *testing.T) {
	var id ProductID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestCategoryOrDefault(t *testing.T) {
	assert.Equal(t, DefaultCategory, Product{}.CategoryOrDefault())
	assert.Equal(t, "Office", Product{Category: "Office"}.CategoryOrDefault())
}

func TestProductDecodesWirePrice(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":"1","product_price":89.99,"stock_count":42}`), &p))
	assert.True(t, p.Price.Equal(decimal.RequireFromString("89.99")))
	assert.Equal(t, "3779.58", p.Value().StringFixed(2))
}

func TestProductIDNormalisesIntegralNumbers(t *testing.T) {
	cases := map[string]ProductID{
		`1001`:   "1001",
		`1e3`:    "1000",
		`1000.0`: "1000",
		`12.5`:   "12.5",
		`"1e3"`:  "1e3",
	}
	for in, want := range cases {
		var id ProductID
		require.NoError(t, json.Unmarshal([]byte(in), &id), in)
		assert.Equal(t, want, id, in)
	}
}

func TestProductEncodesPriceAsNumber(t *testing.T) {
	p := Product{ID: "1001", Name: "Wireless Headphones", Price: decimal.RequireFromString("89.99"), StockCount: 42}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	price, ok := doc["product_price"].(float64)
	require.True(t, ok, "product_price is %T", doc["product_price"])
	assert.InDelta(t, 89.99, price, 1e-9)

	var back Product
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Price.Equal(p.Price))
}
