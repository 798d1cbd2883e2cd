// Package requestutil generates and validates request correlation IDs.
package requestutil

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
)

// Header carries the request ID on both requests and responses.
const Header = "X-Request-ID"

const maxIDLength = 64

// Ensure returns the caller-supplied request ID when it is usable, or a
// fresh one otherwise.
func Ensure(r *http.Request) string {
	if id := sanitize(r.Header.Get(Header)); id != "" {
		return id
	}
	return New()
}

// New returns a random 128-bit hex ID.
func New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// ClientIP extracts the client IP from X-Forwarded-For or RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	return r.RemoteAddr
}

// sanitize accepts only short alphanumeric IDs so hostile header values
// never reach the logs verbatim.
func sanitize(id string) string {
	if id == "" || len(id) > maxIDLength {
		return ""
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return ""
		}
	}
	return id
}
