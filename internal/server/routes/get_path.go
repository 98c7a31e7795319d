package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lobbynetz/backend/internal/server/middleware"
	"github.com/lobbynetz/backend/pkg/graph"
	"github.com/lobbynetz/backend/pkg/logger"
	"github.com/lobbynetz/backend/pkg/metrics"
)

func GetPathHandler(c echo.Context) error {
	type getPathParams struct {
		Source string `query:"source" validate:"required"`
		Target string `query:"target" validate:"required"`
	}

	type getPathResponse struct {
		Path        []string           `json:"path"`
		PathDetails *graph.PathDetails `json:"pathDetails,omitempty"`
		Message     string             `json:"message,omitempty"`
	}

	params := new(getPathParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Source and target IDs are required"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Source and target IDs are required"})
	}

	g := c.(*middleware.AppContext).App.Graph

	path, err := g.ShortestPath(params.Source, params.Target)
	if err != nil {
		if errors.Is(err, graph.ErrNoPath) {
			metrics.PathSearches.WithLabelValues("none").Inc()
			logger.Debug("No path found", "source", params.Source, "target", params.Target)
			return c.JSON(http.StatusOK, getPathResponse{
				Message: "No path found between these nodes",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	metrics.PathSearches.WithLabelValues("found").Inc()
	details := g.ResolvePath(path)
	return c.JSON(http.StatusOK, getPathResponse{
		Path:        path,
		PathDetails: &details,
	})
}
