package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			trailhead.Mask(q, "password")

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ip, ok := IPAddress(r.Context()); ok {
				strs = append([]string{ip}, strs...)
			}

			data := make(map[string]any)
			if id, ok := r.Context().Value(trailhead.RequestIDKey).(string); ok {
				data["requestID"] = id
			}

			var lc *logger.LogContext
			if len(data) > 0 {
				lc = &logger.LogContext{Data: data}
			}

			ls.Info(strings.Join(strs, " "), lc)
			h.ServeHTTP(w, r)
		})
	}
}
