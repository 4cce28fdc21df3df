package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
	"github.com/fairyhunter13/inventory-dashboard/internal/obs"
)

var ErrMissingColumn = errors.New("inventory CSV missing required column")

var requiredColumns = []string{"product_id", "product_name", "product_price", "stock_count"}

// CSVProvider reads an inventory export with a header row.
type CSVProvider struct {
	path string
}

func NewCSVProvider(path string) *CSVProvider {
	return &CSVProvider{path: path}
}

func (p *CSVProvider) Name() string { return "csv" }

func (p *CSVProvider) FetchInventory(ctx context.Context) ([]model.Product, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", p.path, err)
	}
	defer f.Close()
	return ReadCSV(ctx, f)
}

// ReadCSV parses product rows. Columns may appear in any order and category
// is optional. Rows whose price or stock cannot be parsed are logged and
// skipped.
func ReadCSV(ctx context.Context, r io.Reader) ([]model.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	catIdx, hasCategory := col["category"]

	products := []model.Product{}
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read inventory CSV row %d: %w", line, err)
		}
		field := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		p, err := parseRow(field)
		if err != nil {
			obs.Logger.Warn("csv_row_skipped", "line", line, "error", err)
			continue
		}
		if hasCategory && catIdx < len(rec) {
			p.Category = strings.TrimSpace(rec[catIdx])
		}
		products = append(products, p)
	}
	return products, nil
}

func parseRow(field func(string) string) (model.Product, error) {
	stock, err := strconv.ParseInt(field("stock_count"), 10, 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("stock_count: %w", err)
	}
	price, err := decimal.NewFromString(field("product_price"))
	if err != nil {
		return model.Product{}, fmt.Errorf("product_price: %w", err)
	}
	return model.Product{
		ID:         model.ProductID(field("product_id")),
		Name:       field("product_name"),
		Price:      price,
		StockCount: stock,
	}, nil
}
