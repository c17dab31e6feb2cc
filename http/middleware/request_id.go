package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/trailhead"
)

const requestIDHeader = "X-Request-ID"

// RequestID adds a uuid to the request context under trailhead.RequestIDKey
// and echoes it in the "X-Request-ID" response header.
//
// An incoming "X-Request-ID" header that parses as a UUID is reused.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), trailhead.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
