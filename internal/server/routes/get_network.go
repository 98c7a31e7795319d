package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lobbynetz/backend/internal/server/middleware"
	"github.com/lobbynetz/backend/pkg/graph"
)

type yearParams struct {
	Year string `query:"year" validate:"omitempty,number,max=4"`
}

// bindYear returns the requested view of the graph: the whole network when no
// year is given, otherwise the links active in that year and their endpoints.
func bindYear(c echo.Context) (*graph.Graph, error) {
	params := new(yearParams)
	if err := c.Bind(params); err != nil {
		return nil, err
	}
	if err := c.Validate(params); err != nil {
		return nil, err
	}

	g := c.(*middleware.AppContext).App.Graph
	if params.Year == "" {
		return g, nil
	}

	year, err := parseYear(params.Year)
	if err != nil {
		return nil, err
	}
	return g.InYear(year), nil
}

func GetNetworkHandler(c echo.Context) error {
	g, err := bindYear(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid year"})
	}

	return c.JSON(http.StatusOK, g.Network())
}

func GetNodesByTypeHandler(c echo.Context) error {
	type getNodesParams struct {
		Type string `param:"type" validate:"required"`
	}

	params := new(getNodesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	g := c.(*middleware.AppContext).App.Graph
	return c.JSON(http.StatusOK, g.FindByType(params.Type))
}

func GetLinksByTypeHandler(c echo.Context) error {
	type getLinksParams struct {
		Type string `param:"type" validate:"required"`
	}

	params := new(getLinksParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	g := c.(*middleware.AppContext).App.Graph
	return c.JSON(http.StatusOK, g.LinksByType(params.Type))
}
