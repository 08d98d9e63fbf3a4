package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidContentLength = errors.New("invalid content-length")
	ErrInvalidJSON          = errors.New("body is not valid json")
)

// DecodeJSONBody reads the request body as declared by Content-Length and
// parses it as a single JSON value of any type. ok is false when the request
// carries no body (header missing, empty, or a length <= 0). Numbers are kept
// as json.Number so re-encoding reproduces them exactly.
func DecodeJSONBody(r *http.Request) (payload any, ok bool, err error) {
	rawLen := r.Header.Get(echo.HeaderContentLength)
	if rawLen == "" {
		// client-built requests carry the length only on the struct
		if r.ContentLength <= 0 {
			return nil, false, nil
		}
		rawLen = strconv.FormatInt(r.ContentLength, 10)
	}

	size, err := strconv.ParseInt(strings.TrimSpace(rawLen), 10, 64)
	if err != nil {
		return nil, false, ErrInvalidContentLength
	}
	if size <= 0 || r.Body == nil {
		return nil, false, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, size))
	if err != nil || int64(len(raw)) < size {
		return nil, false, ErrInvalidJSON
	}
	if !utf8.Valid(raw) {
		return nil, false, ErrInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, false, ErrInvalidJSON
	}
	// exactly one value; only whitespace may follow it
	if _, err := dec.Token(); err != io.EOF {
		return nil, false, ErrInvalidJSON
	}
	return payload, true, nil
}
