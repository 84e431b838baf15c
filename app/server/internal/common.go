// Package internal provides shared utilities for server subpackages.
package internal

import (
	"encoding/hex"
	"net"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// HXRequest is set by htmx on every request it issues.
const HXRequest = "HX-Request"

// IsHTMX reports whether the request came from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// ClientHasher turns client addresses into stable anonymous ids,
// so raw IPs never reach logs or limiter keys.
type ClientHasher struct {
	key [32]byte
}

// NewClientHasher makes a hasher keyed by secret. Any secret length is accepted.
func NewClientHasher(secret string) *ClientHasher {
	return &ClientHasher{key: blake2b.Sum256([]byte(secret))}
}

// ClientID returns a short keyed hash of the request's client address.
// Expects rest.RealIP to have set RemoteAddr already.
func (c *ClientHasher) ClientID(r *http.Request) string {
	h, err := blake2b.New(8, c.key[:])
	if err != nil {
		// only possible for invalid size or key length, both fixed here
		panic(err)
	}
	_, _ = h.Write([]byte(clientIP(r)))
	return hex.EncodeToString(h.Sum(nil))
}

func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
