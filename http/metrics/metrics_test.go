package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/metrics"
	"github.com/xy-planning-network/trailhead/http/router"
)

func TestCollector(t *testing.T) {
	// Arrange
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	require.Nil(t, err)

	r, err := router.New()
	require.Nil(t, err)
	r.Get("/users/{id}", func(c *flow.Context, _ flow.Next) error {
		c.Writer.WriteHeader(http.StatusAccepted)
		return nil
	})
	r.Get("/boom", func(*flow.Context, flow.Next) error { return errors.New("boom") })

	h := flow.Serve(flow.Compose(col.Handler(), r.Middleware()))

	for _, path := range []string{"/users/1", "/users/2", "/nope", "/boom"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users/3", nil))

	expected := `
# HELP trailhead_http_requests_total Count of HTTP requests handled, by method, route pattern and status code.
# TYPE trailhead_http_requests_total counter
trailhead_http_requests_total{method="GET",route="/boom",status="500"} 1
trailhead_http_requests_total{method="GET",route="/users/{id}",status="202"} 2
trailhead_http_requests_total{method="GET",route="unmatched",status="404"} 1
trailhead_http_requests_total{method="POST",route="unmatched",status="405"} 1
`

	// Act
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "trailhead_http_requests_total")
	series, cerr := testutil.GatherAndCount(reg, "trailhead_http_request_duration_seconds")

	// Assert
	require.Nil(t, err)
	require.Nil(t, cerr)
	require.Equal(t, 4, series)
}

func TestCollectorRegistersOnce(t *testing.T) {
	// Arrange
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.Nil(t, err)

	// Act
	col, err := metrics.New(reg)

	// Assert
	require.NotNil(t, err)
	require.Nil(t, col)
}

func TestExpose(t *testing.T) {
	// Arrange
	col, err := metrics.New(nil)
	require.Nil(t, err)

	c := flow.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	col.Observe(c, http.StatusOK, 0)

	w := httptest.NewRecorder()

	// Act
	col.Expose().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `trailhead_http_requests_total{method="GET",route="unmatched",status="200"} 1`)
}
