// Package di provides dependency injection factories for creating application components.
package di

import (
	"polygon_dashboard/internal/platform/externalapi/polygon"
	infrahttp "polygon_dashboard/internal/platform/http"
)

// NewPolygonClient creates a fully configured Polygon API client with HTTP client.
func NewPolygonClient() *polygon.Client {
	cfg := polygon.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return polygon.NewClient(cfg, httpClient)
}
