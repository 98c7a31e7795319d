package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lobbynetz/backend/internal/server/middleware"
	"github.com/lobbynetz/backend/pkg/common"
	"github.com/lobbynetz/backend/pkg/graph"
)

func GetNodeHandler(c echo.Context) error {
	type getNodeParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getNodeResponse struct {
		Node        common.Node   `json:"node"`
		Connections []common.Link `json:"connections"`
	}

	params := new(getNodeParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	g := c.(*middleware.AppContext).App.Graph

	node, err := g.FindNode(params.ID)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Node not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	connections, err := g.ConnectionsOf(params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, getNodeResponse{
		Node:        node,
		Connections: connections,
	})
}

func SearchHandler(c echo.Context) error {
	type searchParams struct {
		Query string `query:"query" validate:"required"`
	}

	params := new(searchParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Search query is required"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Search query is required"})
	}

	g := c.(*middleware.AppContext).App.Graph

	res, err := g.Search(params.Query)
	if err != nil {
		if errors.Is(err, graph.ErrEmptyQuery) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Search query is required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, res)
}
