// Package main is the inventory dashboard command: an HTTP API plus
// one-shot terminal report and summary commands.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/inventory-dashboard/internal/config"
	"github.com/fairyhunter13/inventory-dashboard/internal/inventory"
	"github.com/fairyhunter13/inventory-dashboard/internal/obs"
	"github.com/fairyhunter13/inventory-dashboard/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory-dashboard",
		Short:         "Inventory management dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newReportCmd(), newSummarizeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads config, sets up logging to logw and builds the loader.
func bootstrap(logw io.Writer) (config.Config, *store.Store, *inventory.Loader, *obs.Metrics, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}
	obs.InitLoggerTo(logw, cfg.LogLevel)
	p, err := inventory.NewProvider(cfg)
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}
	st := store.New()
	m := obs.NewMetrics()
	return cfg, st, inventory.NewLoader(p, st, m).WithTimeout(cfg.FetchBudget()), m, nil
}

// loadOnce performs the single fetch for one-shot commands. Logs go to
// stderr so stdout carries only the command output.
func loadOnce(ctx context.Context) (*store.Store, error) {
	cfg, st, l, _, err := bootstrap(os.Stderr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchBudget())
	defer cancel()
	if _, err := l.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", inventory.LoadErrorMessage, err)
	}
	return st, nil
}
