// Package inventory loads product records from an external source into the
// store. Every source implements Provider.
package inventory

import (
	"context"
	"fmt"

	"github.com/fairyhunter13/inventory-dashboard/internal/config"
	"github.com/fairyhunter13/inventory-dashboard/internal/model"
)

// Provider fetches the full inventory once per call.
type Provider interface {
	// Name identifies the source in logs and metrics.
	Name() string
	FetchInventory(ctx context.Context) ([]model.Product, error)
}

// NewProvider builds the provider selected by cfg.Source.
func NewProvider(cfg config.Config) (Provider, error) {
	switch cfg.Source {
	case config.SourceMock:
		return NewMemoryProvider(MockInventory()), nil
	case config.SourceHTTP:
		return NewHTTPProvider(cfg.URL, cfg.FetchTimeout, cfg.FetchRetries), nil
	case config.SourceCSV:
		return NewCSVProvider(cfg.CSVPath), nil
	}
	return nil, fmt.Errorf("unknown inventory source %q", cfg.Source)
}
