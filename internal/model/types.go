// Package model defines domain types used by the service.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and values are published as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCategory is used for records that carry no category.
const DefaultCategory = "Uncategorized"

// ProductID is an opaque product identifier. On the wire it may be a JSON
// string or a JSON number; it is always held as its string form. Integral
// numbers are normalised, so 1e3 and 1000.0 both become "1000".
type ProductID string

// UnmarshalJSON accepts both `"1001"` and `1001`.
func (id *ProductID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product_id: expected string or number: %w", err)
	}
	*id = ProductID(normalizeNumber(n))
	return nil
}

func normalizeNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return s
	}
	return d.String()
}

// Product represents one inventory record.
type Product struct {
	ID         ProductID       `json:"product_id"`
	Name       string          `json:"product_name"`
	Category   string          `json:"category,omitempty"`
	Price      decimal.Decimal `json:"product_price"`
	StockCount int64           `json:"stock_count"`
}

// CategoryOrDefault returns the category, or DefaultCategory when it is empty.
func (p Product) CategoryOrDefault() string {
	if p.Category == "" {
		return DefaultCategory
	}
	return p.Category
}

// Value is price multiplied by stock count.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.StockCount))
}
