package inventory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
	"github.com/fairyhunter13/inventory-dashboard/internal/obs"
	"github.com/fairyhunter13/inventory-dashboard/internal/store"
	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

// LoadErrorMessage is the user-visible text shown when a load fails.
const LoadErrorMessage = "Failed to load inventory data. Please check the file URL and format."

// LoadError carries the user-visible message alongside the cause.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load inventory from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Message is safe to show to end users.
func (e *LoadError) Message() string { return LoadErrorMessage }

// Result is the outcome of a successful load.
type Result struct {
	Products []model.Product
	// Changes against the previous snapshot; empty on the first load.
	Changes Changes
}

// Loader fetches from a Provider into a Store. Concurrent Load calls share
// one in-flight fetch, which runs detached from any single caller.
type Loader struct {
	provider Provider
	store    *store.Store
	metrics  *obs.Metrics
	timeout  time.Duration
	group    singleflight.Group
}

// NewLoader wires provider to st. metrics may be nil.
func NewLoader(provider Provider, st *store.Store, metrics *obs.Metrics) *Loader {
	return &Loader{provider: provider, store: st, metrics: metrics}
}

// WithTimeout bounds each shared fetch. Zero leaves it to the provider.
func (l *Loader) WithTimeout(d time.Duration) *Loader {
	l.timeout = d
	return l
}

func (l *Loader) Source() string { return l.provider.Name() }

// Load fetches the inventory and replaces the store contents. On failure the
// store keeps its previous contents and records LoadErrorMessage. A caller
// whose ctx ends first gets ctx.Err() while the fetch carries on for the
// others; the store is not touched on its behalf.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	ch := l.group.DoChan("load", func() (any, error) {
		fctx := context.WithoutCancel(ctx)
		if l.timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(fctx, l.timeout)
			defer cancel()
		}
		return l.load(fctx)
	})
	select {
	case <-ctx.Done():
		obs.Logger.Warn("inventory_load_abandoned", "source", l.Source(), "error", ctx.Err())
		return Result{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			obs.Logger.Debug("inventory_load_shared", "source", l.Source())
		}
		if res.Err != nil {
			return Result{}, res.Err
		}
		return res.Val.(Result), nil
	}
}

func (l *Loader) load(ctx context.Context) (Result, error) {
	start := time.Now()
	ps, err := l.provider.FetchInventory(ctx)
	if err != nil {
		l.store.Fail(LoadErrorMessage)
		l.observe("failure")
		obs.Logger.Error("inventory_load_failed", "source", l.Source(), "error", err)
		return Result{}, &LoadError{Source: l.Source(), Err: err}
	}
	var changes Changes
	if status, _ := l.store.Status(); status == store.StatusReady {
		changes = Diff(l.store.Snapshot(), ps)
	}
	l.store.Replace(ps)
	l.observe("success")
	stats := view.ComputeStats(ps)
	if l.metrics != nil {
		l.metrics.Products.Set(float64(stats.TotalItems))
		l.metrics.LowStock.Set(float64(stats.LowStockItems))
	}
	obs.Logger.Info("inventory_loaded",
		"source", l.Source(),
		"products", stats.TotalItems,
		"low_stock", stats.LowStockItems,
		"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
	)
	if !changes.Empty() {
		obs.Logger.Info("inventory_changed",
			"source", l.Source(),
			"added", len(changes.Added),
			"updated", len(changes.Updated),
			"low_stock", len(changes.LowStock),
			"alert", changes.Message(),
		)
	}
	return Result{Products: ps, Changes: changes}, nil
}

func (l *Loader) observe(outcome string) {
	if l.metrics != nil {
		l.metrics.LoadsTotal.WithLabelValues(l.Source(), outcome).Inc()
	}
}
