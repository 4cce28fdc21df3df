package view

import (
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
)

// NoMatchesMessage is shown in place of an empty display sequence.
const NoMatchesMessage = "No items match your search criteria"

// Row is one rendered table line.
type Row struct {
	model.Product
	Category        string          `json:"category"`
	Value           decimal.Decimal `json:"value"`
	Status          Status          `json:"status"`
	LowStock        bool            `json:"low_stock"`
	StockBarPercent int             `json:"stock_bar_percent"`
}

// Dashboard is the full derived view for one state.
type Dashboard struct {
	State      State    `json:"view"`
	Categories []string `json:"categories"`
	Rows       []Row    `json:"items"`
	Stats      Stats    `json:"stats"`
	Showing    int      `json:"showing"`
	Total      int      `json:"total"`
	Message    string   `json:"message,omitempty"`
}

// NewRow decorates p with its derived presentation fields.
func NewRow(p model.Product) Row {
	return Row{
		Product:         p,
		Category:        p.CategoryOrDefault(),
		Value:           p.Value(),
		Status:          StatusOf(p.StockCount),
		LowStock:        IsLowStock(p.StockCount),
		StockBarPercent: StockBarPercent(p.StockCount),
	}
}

// Build runs the whole pipeline for s over products.
func Build(products []model.Product, s State) Dashboard {
	items := Apply(products, s)
	rows := make([]Row, 0, len(items))
	for _, p := range items {
		rows = append(rows, NewRow(p))
	}
	d := Dashboard{
		State:      s,
		Categories: Categories(products),
		Rows:       rows,
		Stats:      ComputeStats(products),
		Showing:    len(rows),
		Total:      len(products),
	}
	if len(rows) == 0 {
		d.Message = NoMatchesMessage
	}
	return d
}
