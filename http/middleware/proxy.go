package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// ProxyHeaders populates the request's RemoteAddr, URL.Scheme and Host
// from "X-Forwarded-*" and "Forwarded" headers set by a reverse proxy.
func ProxyHeaders() Adapter {
	return handlers.ProxyHeaders
}

// Compress gzip or deflate encodes responses for clients accepting those encodings.
//
// A level outside of the range accepted by compress/gzip falls back to gzip.DefaultCompression.
func Compress(level int) Adapter {
	return func(h http.Handler) http.Handler {
		return handlers.CompressHandlerLevel(h, level)
	}
}
