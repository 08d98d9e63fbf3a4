package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	ServiceName  = "simple-api"
	defaultName  = "world"
	indexMessage = "Simple API is running. Try /health or /api/hello?name=you."

	allowedMethods = "GET, POST, OPTIONS"
	allowedHeaders = "Content-Type"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type messageResp struct {
	Message string `json:"message"`
}

type echoResp struct {
	Message  string `json:"message"`
	Received any    `json:"received"`
}

func (h *Handler) Health(c echo.Context) error {
	return writeJSON(c, http.StatusOK, healthResp{Status: "ok", Service: ServiceName})
}

func (h *Handler) Index(c echo.Context) error {
	return writeJSON(c, http.StatusOK, messageResp{Message: indexMessage})
}

// Hello greets the first non-blank "name" query value, or "world".
func (h *Handler) Hello(c echo.Context) error {
	name := defaultName
	for _, v := range c.QueryParams()["name"] {
		if v != "" {
			name = v
			break
		}
	}
	return writeJSON(c, http.StatusOK, messageResp{Message: "Hello, " + name + "!"})
}

func (h *Handler) Echo(c echo.Context) error {
	payload, _, err := DecodeJSONBody(c.Request())
	switch {
	case errors.Is(err, ErrInvalidContentLength):
		return writeError(c, http.StatusBadRequest, MsgInvalidContentLength)
	case err != nil:
		return writeError(c, http.StatusBadRequest, MsgBodyNotJSON)
	}
	// a request without a body echoes null
	return writeJSON(c, http.StatusOK, echoResp{Message: "payload received", Received: payload})
}

// Preflight answers CORS preflight requests on any path.
func (h *Handler) Preflight(c echo.Context) error {
	hdr := c.Response().Header()
	hdr.Set(echo.HeaderAccessControlAllowOrigin, "*")
	hdr.Set(echo.HeaderAccessControlAllowMethods, allowedMethods)
	hdr.Set(echo.HeaderAccessControlAllowHeaders, allowedHeaders)
	hdr.Set(echo.HeaderContentLength, "0")
	return c.NoContent(http.StatusOK)
}

func (h *Handler) NotFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, MsgNotFound)
}

func (h *Handler) MethodNotAllowed(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderAllow, allowedMethods)
	return writeError(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
