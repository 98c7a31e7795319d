package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func GetStatsHandler(c echo.Context) error {
	g, err := bindYear(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid year"})
	}

	return c.JSON(http.StatusOK, g.Stats())
}
