package server

import (
	"github.com/lobbynetz/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiRoutes := e.Group("/api")

	// Network routes
	apiRoutes.GET("/network", routes.GetNetworkHandler)
	apiRoutes.GET("/nodes/:type", routes.GetNodesByTypeHandler)
	apiRoutes.GET("/links/:type", routes.GetLinksByTypeHandler)
	apiRoutes.GET("/stats", routes.GetStatsHandler)

	// Node routes
	apiRoutes.GET("/node/:id", routes.GetNodeHandler)
	apiRoutes.GET("/search", routes.SearchHandler)
	apiRoutes.GET("/scores", routes.GetScoresHandler)

	// Path routes
	apiRoutes.GET("/path", routes.GetPathHandler)
}
