package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/inventory-dashboard/internal/inventory"
	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

func useCSV(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("INVENTORY_SOURCE", "csv")
	t.Setenv("INVENTORY_CSV", path)
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSummarizeFromCSV(t *testing.T) {
	useCSV(t, "product_id,product_name,product_price,stock_count\n1,Cable,2.50,4\n2,Lamp,10,40\n3,Broken,x,1\n")
	out, err := run(t, "summarize")
	require.NoError(t, err)

	var s inventory.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 1, s.LowStockCount)
	assert.Equal(t, "Cable", s.LowStockItems[0].Name)
}

func TestSummarizeToFile(t *testing.T) {
	useCSV(t, "product_id,product_name,product_price,stock_count\n1,Cable,2.50,4\n")
	dest := filepath.Join(t.TempDir(), "summary.json")
	_, err := run(t, "summarize", "--out", dest)
	require.NoError(t, err)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	back, err := inventory.DecodeSummary(b)
	require.NoError(t, err)
	assert.Len(t, back, 1)
}

func TestReportFromCSV(t *testing.T) {
	useCSV(t, "product_id,product_name,category,product_price,stock_count\n1,USB Cable,Accessories,2.50,4\n2,Lamp,Office,10,40\n")
	out, err := run(t, "report", "--search", "cable", "--sort", "stock_count")
	require.NoError(t, err)
	assert.Contains(t, out, "USB Cable")
	assert.NotContains(t, out, "Lamp")
	assert.Contains(t, out, "Showing 1 of 2 items")
}

func TestReportLoadFailure(t *testing.T) {
	t.Setenv("INVENTORY_SOURCE", "csv")
	t.Setenv("INVENTORY_CSV", filepath.Join(t.TempDir(), "missing.csv"))
	t.Setenv("LOG_LEVEL", "error")
	_, err := run(t, "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), inventory.LoadErrorMessage)
}

func TestReportState(t *testing.T) {
	s, err := reportOptions{sort: "product_price", desc: true}.state()
	require.NoError(t, err)
	assert.Equal(t, view.SortByPrice, s.SortKey)
	assert.Equal(t, view.Descending, s.Direction)

	_, err = reportOptions{sort: "weight"}.state()
	assert.ErrorIs(t, err, view.ErrUnknownSortKey)
}

func TestCommandFlagsDoNotLeak(t *testing.T) {
	useCSV(t, "product_id,product_name,category,product_price,stock_count\n1,USB Cable,Accessories,2.50,4\n2,Lamp,Office,10,40\n")
	out, err := run(t, "report", "--search", "lamp")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 2 items")

	out, err = run(t, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 2 of 2 items")
}
