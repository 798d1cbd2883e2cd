package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout bounds the whole response, including the upstream page
	// fetch, which has no timeout of its own.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second
