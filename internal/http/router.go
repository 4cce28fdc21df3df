package httpapi

import (
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/inventory", app.inventoryHandler)
	mux.HandleFunc("/inventory/reload", app.reloadHandler)
	mux.HandleFunc("/categories", app.categoriesHandler)
	mux.HandleFunc("/stats", app.statsHandler)
	mux.HandleFunc("/summary", app.summaryHandler)
	mux.HandleFunc("/products/", app.getProductHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	if app.Metrics != nil {
		mux.Handle("/metrics", app.Metrics.Handler())
	}
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(app.Metrics, mux))
}
