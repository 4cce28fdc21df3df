package main

import (
	"github.com/spf13/cobra"

	"github.com/fairyhunter13/inventory-dashboard/internal/report"
	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

type reportOptions struct {
	search   string
	category string
	sort     string
	desc     bool
}

func newReportCmd() *cobra.Command {
	var opts reportOptions
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard table once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.search, "search", "", "filter by name (case-insensitive) or id")
	f.StringVar(&opts.category, "category", view.AllCategories, "filter by category")
	f.StringVar(&opts.sort, "sort", "", "sort column: product_id, product_name, category, product_price, stock_count")
	f.BoolVar(&opts.desc, "desc", false, "sort descending")
	return cmd
}

func (o reportOptions) state() (view.State, error) {
	key, err := view.ParseSortKey(o.sort)
	if err != nil {
		return view.State{}, err
	}
	s := view.DefaultState().
		WithSearch(o.search).
		WithCategory(o.category)
	if key == view.SortNone {
		return s, nil
	}
	s = s.RequestSort(key)
	if o.desc {
		s = s.RequestSort(key)
	}
	return s, nil
}

func runReport(cmd *cobra.Command, opts reportOptions) error {
	s, err := opts.state()
	if err != nil {
		return err
	}
	st, err := loadOnce(cmd.Context())
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), view.Build(st.Snapshot(), s))
}
