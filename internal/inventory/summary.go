package inventory

import (
	"time"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

// SummaryTimeFormat is the timestamp layout of the summary document.
const SummaryTimeFormat = "2006-01-02T15:04:05Z"

// LowStockItem is one entry of the summary's low-stock list.
type LowStockItem struct {
	ID         model.ProductID `json:"product_id"`
	Name       string          `json:"product_name"`
	StockLevel int64           `json:"stock_level"`
}

// Summary is the inventory report document consumed by HTTPProvider.
type Summary struct {
	Timestamp     string          `json:"timestamp"`
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
	LowStockItems []LowStockItem  `json:"low_stock_items"`
	FullInventory []model.Product `json:"full_inventory"`
}

// BuildSummary reports on products as of now.
func BuildSummary(products []model.Product, now time.Time) Summary {
	s := Summary{
		Timestamp:     now.UTC().Format(SummaryTimeFormat),
		TotalProducts: len(products),
		LowStockItems: []LowStockItem{},
		FullInventory: append([]model.Product{}, products...),
	}
	for _, p := range products {
		if view.IsLowStock(p.StockCount) {
			s.LowStockItems = append(s.LowStockItems, LowStockItem{ID: p.ID, Name: p.Name, StockLevel: p.StockCount})
		}
	}
	s.LowStockCount = len(s.LowStockItems)
	return s
}
