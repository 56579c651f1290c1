package main

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"timeout"}`

// timeoutHandler answers 503 Service Unavailable when h misses the deadline.
func timeoutHandler(h http.Handler, defaultTimeout time.Duration) http.Handler {
	// Shorter than the server's write timeout so that the 503 still reaches the client.
	handlerTimeout := defaultTimeout - 500*time.Millisecond //nolint:mnd // 500ms
	return http.TimeoutHandler(h, handlerTimeout, timeoutBody)
}
