package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/lobbynetz/backend/pkg/graph"
)

// App holds the process wide, read-only state shared by all handlers.
type App struct {
	Graph *graph.Graph
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
