package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
)

// MemoryProvider serves a fixed product list. It is the default development
// source and the stub used in tests.
type MemoryProvider struct {
	products []model.Product
	err      error
}

func NewMemoryProvider(ps []model.Product) *MemoryProvider {
	return &MemoryProvider{products: append([]model.Product(nil), ps...)}
}

// NewFailingProvider returns a MemoryProvider whose fetch always fails with err.
func NewFailingProvider(err error) *MemoryProvider {
	return &MemoryProvider{err: err}
}

func (m *MemoryProvider) Name() string { return "mock" }

func (m *MemoryProvider) FetchInventory(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Product(nil), m.products...), nil
}

func mock(id, name, category, price string, stock int64) model.Product {
	return model.Product{
		ID:         model.ProductID(id),
		Name:       name,
		Category:   category,
		Price:      decimal.RequireFromString(price),
		StockCount: stock,
	}
}

// MockInventory is the built-in demo data set.
func MockInventory() []model.Product {
	return []model.Product{
		mock("1001", "Wireless Headphones", "Electronics", "89.99", 42),
		mock("1002", "Smart Watch", "Electronics", "199.99", 18),
		mock("1003", "USB-C Cable", "Accessories", "12.99", 156),
		mock("1004", "Bluetooth Speaker", "Electronics", "59.99", 7),
		mock("1005", "Laptop Stand", "Office", "24.95", 23),
		mock("1006", "Mechanical Keyboard", "Computers", "129.99", 5),
		mock("1007", "Wireless Mouse", "Computers", "45.00", 34),
		mock("1008", "Monitor", "Computers", "299.99", 12),
		mock("1009", "HDMI Cable", "Accessories", "8.99", 89),
		mock("1010", "External SSD", "Storage", "149.99", 15),
		mock("1011", "Desk Chair", "Office", "189.95", 3),
		mock("1012", "Webcam", "Electronics", "69.99", 28),
	}
}
