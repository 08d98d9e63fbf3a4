package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"simple-api/internal/adapter/middleware"
)

// NewEcho wires the middleware chain, the JSON error handler and the routing
// table into a ready-to-serve echo instance.
func NewEcho(log *zap.Logger, router *Router) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(
		middleware.AllowAllOrigins(),
		middleware.RequestLogger(log),
		echomw.Recover(),
	)

	router.Register(e)
	return e
}
