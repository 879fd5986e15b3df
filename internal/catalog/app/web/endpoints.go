package web

import (
	"net/http"

	"gosupplier_api/internal/catalog/app/web/handlers"
	"gosupplier_api/metrics"
	"gosupplier_api/pkg/middleware"
)

// SetupRoutes mounts the catalog endpoints plus the metrics scrape target,
// everything except /metrics wrapped in the request-metrics middleware.
func SetupRoutes(
	normalizeHandler *handlers.NormalizeHandler,
	syncHandler *handlers.SyncHandler,
	productsHandler *handlers.ProductsHandler,
) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/products/normalize", middleware.PrometheusMiddleware(normalizeHandler))
	mux.Handle("/api/sync", middleware.PrometheusMiddleware(syncHandler))
	mux.Handle("/api/products", middleware.PrometheusMiddleware(productsHandler))
	mux.Handle("/metrics", metrics.MetricsHandler())
	return mux
}
