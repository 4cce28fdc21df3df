package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/inventory-dashboard/internal/config"
	httpopenapi "github.com/fairyhunter13/inventory-dashboard/internal/http/openapi"
	"github.com/fairyhunter13/inventory-dashboard/internal/inventory"
	"github.com/fairyhunter13/inventory-dashboard/internal/model"
	"github.com/fairyhunter13/inventory-dashboard/internal/obs"
	"github.com/fairyhunter13/inventory-dashboard/internal/store"
	"github.com/fairyhunter13/inventory-dashboard/internal/view"
)

type App struct {
	Cfg     config.Config
	Store   *store.Store
	Loader  *inventory.Loader
	Metrics *obs.Metrics
	closing atomic.Bool
	started time.Time
	now     func() time.Time
}

type reloadResp struct {
	Status   string            `json:"status"`
	Source   string            `json:"source"`
	LoadedAt string            `json:"loaded_at"`
	Stats    view.Stats        `json:"stats"`
	Changes  inventory.Changes `json:"changes"`
	Alert    string            `json:"alert,omitempty"`
}

func NewApp(cfg config.Config, st *store.Store, l *inventory.Loader, m *obs.Metrics) *App {
	return &App{Cfg: cfg, Store: st, Loader: l, Metrics: m, started: time.Now(), now: time.Now}
}

func (a *App) StartShutdown() {
	a.closing.Store(true)
}

// ready returns a store snapshot, or writes 503 when no inventory has been
// loaded yet.
func (a *App) ready(w http.ResponseWriter) ([]model.Product, bool) {
	status, msg := a.Store.Status()
	if status != store.StatusReady {
		if msg == "" {
			msg = "Loading inventory data..."
		}
		WriteJSONError(w, http.StatusServiceUnavailable, "inventory_unavailable", msg)
		return nil, false
	}
	return a.Store.Snapshot(), true
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return false
	}
	return true
}

// parseState builds the view state from search, category, sort, direction
// and the optional toggle column.
func parseState(r *http.Request) (view.State, error) {
	q := r.URL.Query()
	s := view.DefaultState().WithSearch(q.Get("search"))
	if c := q.Get("category"); c != "" {
		s = s.WithCategory(c)
	}
	key, err := view.ParseSortKey(q.Get("sort"))
	if err != nil {
		return s, err
	}
	dir, err := view.ParseDirection(q.Get("direction"))
	if err != nil {
		return s, err
	}
	s.SortKey, s.Direction = key, dir
	if t := q.Get("toggle"); t != "" {
		tk, err := view.ParseSortKey(t)
		if err != nil {
			return s, err
		}
		s = s.RequestSort(tk)
	}
	return s, nil
}

func (a *App) inventoryHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	s, err := parseState(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	ps, ok := a.ready(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, view.Build(ps, s))
}

func (a *App) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	ps, ok := a.ready(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": view.Categories(ps)})
}

func (a *App) statsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	ps, ok := a.ready(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, view.ComputeStats(ps))
}

func (a *App) summaryHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	ps, ok := a.ready(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, inventory.BuildSummary(ps, a.now()))
}

func (a *App) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	if a.closing.Load() {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), a.Cfg.FetchBudget())
	defer cancel()
	res, err := a.Loader.Load(ctx)
	if err != nil {
		msg := inventory.LoadErrorMessage
		var le *inventory.LoadError
		if errors.As(err, &le) {
			msg = le.Message()
		}
		WriteJSONError(w, http.StatusBadGateway, "inventory_load_failed", msg)
		return
	}
	writeJSON(w, http.StatusOK, reloadResp{
		Status:   "reloaded",
		Source:   a.Loader.Source(),
		LoadedAt: a.Store.LoadedAt().Format(time.RFC3339),
		Stats:    view.ComputeStats(res.Products),
		Changes:  res.Changes,
		Alert:    res.Changes.Message(),
	})
	obs.Logger.Info("inventory_reloaded",
		"request_id", RequestIDFromContext(r.Context()),
		"products", len(res.Products),
	)
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	prefix := "/products/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if _, ok := a.ready(w); !ok {
		return
	}
	p, ok := a.Store.Get(model.ProductID(id))
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, view.NewRow(p))
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	status, _ := a.Store.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"inventory":  status,
		"products":   a.Store.Len(),
		"uptime_sec": time.Since(a.started).Seconds(),
	})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Inventory Dashboard API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
