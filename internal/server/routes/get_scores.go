package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lobbynetz/backend/internal/server/middleware"
)

const (
	defaultMinScore = 0
	defaultMaxScore = 100
)

func GetScoresHandler(c echo.Context) error {
	type getScoresParams struct {
		Min float64 `query:"min"`
		Max float64 `query:"max"`
	}

	params := &getScoresParams{Min: defaultMinScore, Max: defaultMaxScore}
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid score range"})
	}

	g := c.(*middleware.AppContext).App.Graph

	res, err := g.ScoreRange(params.Min, params.Max)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid score range"})
	}

	return c.JSON(http.StatusOK, res)
}
