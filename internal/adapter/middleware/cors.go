package middleware

import "github.com/labstack/echo/v4"

// AllowAllOrigins sets Access-Control-Allow-Origin: * before the handler
// runs, so error responses carry it as well.
func AllowAllOrigins() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	}
}
