package inventory

import (
	"fmt"
	"strings"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

// ProductUpdate is a name or category change to an existing product.
type ProductUpdate struct {
	ID          model.ProductID `json:"product_id"`
	OldName     string          `json:"old_name"`
	NewName     string          `json:"new_name"`
	OldCategory string          `json:"old_category"`
	NewCategory string          `json:"new_category"`
}

// LowStockAlert is a product at or below the threshold whose stock is new
// or has moved since the previous snapshot.
type LowStockAlert struct {
	ID           model.ProductID `json:"product_id"`
	Name         string          `json:"product_name"`
	Category     string          `json:"category"`
	CurrentStock int64           `json:"current_stock"`
	Threshold    int64           `json:"threshold"`
}

// Changes is the difference between two inventory snapshots.
type Changes struct {
	Added    []model.Product `json:"added,omitempty"`
	Updated  []ProductUpdate `json:"updated,omitempty"`
	LowStock []LowStockAlert `json:"low_stock,omitempty"`
}

// Empty reports whether there is nothing to alert on.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.LowStock) == 0
}

// Diff compares the next snapshot against prev. Products missing from next
// are not reported. Neither slice is modified.
func Diff(prev, next []model.Product) Changes {
	old := make(map[model.ProductID]model.Product, len(prev))
	for _, p := range prev {
		old[p.ID] = p
	}
	var c Changes
	for _, p := range next {
		o, existed := old[p.ID]
		switch {
		case !existed:
			c.Added = append(c.Added, p)
		case o.Name != p.Name || o.CategoryOrDefault() != p.CategoryOrDefault():
			c.Updated = append(c.Updated, ProductUpdate{
				ID:          p.ID,
				OldName:     o.Name,
				NewName:     p.Name,
				OldCategory: o.CategoryOrDefault(),
				NewCategory: p.CategoryOrDefault(),
			})
		}
		if view.IsLowStock(p.StockCount) && (!existed || o.StockCount != p.StockCount) {
			c.LowStock = append(c.LowStock, LowStockAlert{
				ID:           p.ID,
				Name:         p.Name,
				Category:     p.CategoryOrDefault(),
				CurrentStock: p.StockCount,
				Threshold:    view.LowStockThreshold,
			})
		}
	}
	return c
}

// Message renders the alert text, or "" when c is empty.
func (c Changes) Message() string {
	if c.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("INVENTORY ALERT\n\n")
	if len(c.Added) > 0 || len(c.Updated) > 0 {
		b.WriteString("Changes:\n")
		for _, p := range c.Added {
			fmt.Fprintf(&b, "New product added: %s (ID: %s), Category: %s, Stock: %d\n",
				p.Name, p.ID, p.CategoryOrDefault(), p.StockCount)
		}
		for _, u := range c.Updated {
			fmt.Fprintf(&b, "Product %s updated:\n - Name: %s → %s\n - Category: %s → %s\n",
				u.ID, u.OldName, u.NewName, u.OldCategory, u.NewCategory)
		}
		b.WriteString("\n")
	}
	if len(c.LowStock) > 0 {
		b.WriteString("Low Stock Items:\n")
		for _, a := range c.LowStock {
			fmt.Fprintf(&b, "• %s (ID: %s)\n  Category: %s\n  Current Stock: %d (Threshold: %d)\n\n",
				a.Name, a.ID, a.Category, a.CurrentStock, a.Threshold)
		}
	}
	return b.String()
}
