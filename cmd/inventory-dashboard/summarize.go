package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/inventory-dashboard/internal/inventory"
	"github.com/fairyhunter13/inventory-dashboard/internal/obs"
)

func newSummarizeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Write the inventory summary document as JSON",
		Long:  "Loads the configured source once (typically a CSV export) and writes the summary document that INVENTORY_SOURCE=http consumes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummarize(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func runSummarize(cmd *cobra.Command, out string) error {
	st, err := loadOnce(cmd.Context())
	if err != nil {
		return err
	}
	sum := inventory.BuildSummary(st.Snapshot(), time.Now())

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(sum); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	obs.Logger.Info("summary_written",
		"total_products", sum.TotalProducts,
		"low_stock_count", sum.LowStockCount,
		"out", out,
	)
	return nil
}
