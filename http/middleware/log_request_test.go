package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		method   string
		ip       string
		id       string
		url      *url.URL
		expected string
		lc       *logger.LogContext
	}{
		{"Zero-Value", http.MethodGet, "", "", &url.URL{Path: "/"}, "GET /", nil},
		{"With-IP", http.MethodPost, "1.1.1.1", "", &url.URL{Path: "/"}, "1.1.1.1 POST /", nil},
		{
			"With-Query-Params",
			http.MethodPut,
			"",
			"",
			&url.URL{Path: "/hitting/the/trailhead", RawQuery: "param=true"},
			"PUT /hitting/the/trailhead?param=true",
			nil,
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			"",
			"",
			&url.URL{Path: "/", RawQuery: "param=true&password=hunter2"},
			"GET /?param=true&password=" + trailhead.LogMaskVal,
			nil,
		},
		{
			"With-Request-ID",
			http.MethodGet,
			"",
			"test-id",
			&url.URL{Path: "/"},
			"GET /",
			&logger.LogContext{Data: map[string]any{"requestID": "test-id"}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			l := logger.NewMockLogger(ctrl)
			l.EXPECT().Info(tc.expected, tc.lc)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.url.String(), nil)
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), trailhead.IpAddrKey, tc.ip))
			}

			if tc.id != "" {
				r = r.Clone(context.WithValue(r.Context(), trailhead.RequestIDKey, tc.id))
			}

			// Act
			middleware.LogRequest(l)(noopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
		})
	}
}
