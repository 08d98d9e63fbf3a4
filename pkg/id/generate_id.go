package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var reRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// NewRequestID returns 32 lowercase hex characters (16 random bytes).
func NewRequestID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// FromHeader reuses a caller-supplied request id when it is a safe token,
// otherwise a fresh one is generated.
func FromHeader(v string) string {
	v = strings.TrimSpace(v)
	if reRequestID.MatchString(v) {
		return v
	}
	return NewRequestID()
}
