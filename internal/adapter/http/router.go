package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

// Router resolves (method, path) pairs against a fixed table. Paths match
// exactly and case-sensitively; the first matching entry wins.
type Router struct {
	h      *Handler
	routes []route
}

func NewRouter(h *Handler) *Router {
	return &Router{
		h: h,
		routes: []route{
			{http.MethodGet, "/health", h.Health},
			{http.MethodGet, "/api/hello", h.Hello},
			{http.MethodGet, "/", h.Index},
			{http.MethodPost, "/api/echo", h.Echo},
		},
	}
}

// Lookup returns the handler for a request line. OPTIONS is answered as a
// preflight on every path; unmatched GET and POST requests are not found;
// any other method is not allowed.
func (r *Router) Lookup(method, path string) echo.HandlerFunc {
	if method == http.MethodOptions {
		return r.h.Preflight
	}
	for _, rt := range r.routes {
		if rt.method == method && rt.path == path {
			return rt.handler
		}
	}
	switch method {
	case http.MethodGet, http.MethodPost:
		return r.h.NotFound
	default:
		return r.h.MethodNotAllowed
	}
}

func (r *Router) Dispatch(c echo.Context) error {
	req := c.Request()
	return r.Lookup(req.Method, req.URL.EscapedPath())(c)
}

// Register mounts the dispatcher for every method on every path, leaving
// the routing decisions to the table.
func (r *Router) Register(e *echo.Echo) {
	e.Any("/", r.Dispatch)
	e.Any("/*", r.Dispatch)
}
