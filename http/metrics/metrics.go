/*
Package metrics counts and times the requests a chain of flow.Handlers handles,
labeling each by the route pattern that matched it.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xy-planning-network/trailhead/http/flow"
)

// Unmatched labels requests no route matched.
const Unmatched = "unmatched"

// A Collector records request metrics into its own prometheus.Registry.
type Collector struct {
	duration *prometheus.HistogramVec
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New constructs a *Collector registering its metrics with reg.
// A nil reg is replaced with a fresh prometheus.Registry.
func New(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trailhead",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of HTTP requests handled, by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trailhead",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling HTTP requests, by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, col := range []prometheus.Collector{c.requests, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Handler records metrics for every request passing through it.
// Place it before any router so unmatched requests are recorded too.
//
// The status recorded for a request whose chain returned an error is the one flow.StatusCode picks.
func (col *Collector) Handler() flow.Handler {
	return func(c *flow.Context, next flow.Next) error {
		start := time.Now()
		status := http.StatusOK

		w := c.Writer
		c.Writer = httpsnoop.Wrap(w, httpsnoop.Hooks{
			WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					status = code
					next(code)
				}
			},
		})

		err := next()
		c.Writer = w
		if err != nil {
			status = flow.StatusCode(err)
		}

		col.Observe(c, status, time.Since(start))
		return err
	}
}

// Observe records one request handled with status in elapsed time.
func (col *Collector) Observe(c *flow.Context, status int, elapsed time.Duration) {
	route := c.Routing.Pattern
	if route == "" {
		route = Unmatched
	}

	method := c.Routing.Method
	if method == "" {
		method = c.Method()
	}

	col.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	col.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Expose serves the collected metrics in the Prometheus exposition format.
func (col *Collector) Expose() http.Handler {
	return promhttp.HandlerFor(col.registry, promhttp.HandlerOpts{Registry: col.registry})
}
