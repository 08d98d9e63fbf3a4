package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const MIMEApplicationJSONUTF8 = "application/json; charset=utf-8"

// Error messages surfaced to clients.
const (
	MsgNotFound              = "Not found"
	MsgMethodNotAllowed      = "Method not allowed"
	MsgInvalidContentLength  = "Invalid Content-Length"
	MsgBodyNotJSON           = "Body is not valid JSON"
	MsgInternalServerFailure = "Internal Server Error"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v without HTML escaping and writes it with an exact
// Content-Length. Every JSON response leaves through here.
func writeJSON(c echo.Context, code int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	body := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(body)))
	return c.Blob(code, MIMEApplicationJSONUTF8, body)
}

func writeError(c echo.Context, code int, msg string) error {
	return writeJSON(c, code, ErrorResponse{Error: msg})
}

// HTTPErrorHandler renders errors that escape a handler (router misses,
// recovered panics, echo.HTTPError) in the same JSON shape as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := MsgInternalServerFailure

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch code {
		case http.StatusNotFound:
			msg = MsgNotFound
		case http.StatusMethodNotAllowed:
			msg = MsgMethodNotAllowed
		default:
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		}
	}

	if werr := writeError(c, code, msg); werr != nil {
		c.Logger().Error(werr)
	}
}
