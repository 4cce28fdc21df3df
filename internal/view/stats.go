package view

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
)

const (
	// LowStockThreshold is the stock level at or below which a product is low.
	LowStockThreshold = 10
	// WellStockedAbove is the stock level above which a product is well stocked.
	WellStockedAbove = 50
)

// Status is the per-row stock badge.
type Status string

const (
	StatusLowStock    Status = "Low Stock"
	StatusInStock     Status = "In Stock"
	StatusWellStocked Status = "Well Stocked"
)

// StatusOf classifies a stock count.
func StatusOf(stock int64) Status {
	switch {
	case IsLowStock(stock):
		return StatusLowStock
	case stock > WellStockedAbove:
		return StatusWellStocked
	default:
		return StatusInStock
	}
}

// IsLowStock reports stock <= LowStockThreshold.
func IsLowStock(stock int64) bool {
	return stock <= LowStockThreshold
}

// StockBarPercent is the fill of the stock-level bar, capped at 100.
func StockBarPercent(stock int64) int {
	if stock <= 0 {
		return 0
	}
	pct := stock * 100 / WellStockedAbove
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// Stats are aggregates over the whole, unfiltered store.
type Stats struct {
	TotalItems    int             `json:"total_items"`
	LowStockItems int             `json:"low_stock_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// TotalValueString renders TotalValue with two decimal places.
func (s Stats) TotalValueString() string {
	return s.TotalValue.StringFixed(2)
}

// MarshalJSON renders total_value with two decimal places.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalItems    int    `json:"total_items"`
		LowStockItems int    `json:"low_stock_items"`
		TotalValue    string `json:"total_value"`
	}{s.TotalItems, s.LowStockItems, s.TotalValueString()})
}

// ComputeStats aggregates count, low-stock count and total value.
func ComputeStats(products []model.Product) Stats {
	st := Stats{TotalItems: len(products), TotalValue: decimal.Zero}
	for _, p := range products {
		if IsLowStock(p.StockCount) {
			st.LowStockItems++
		}
		st.TotalValue = st.TotalValue.Add(p.Value())
	}
	return st
}
