package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/metrics"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithEnv is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRedirects is an example of the second.
// The routes it registers depend on whichever *router.Router the other options settle on.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the trailhead app.
// Requests the web server handles derive their context from it.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the environment variable named by the provided string a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	e := trailhead.Environment(envVar)
	if e.Valid() == nil {
		return func(rng *Ranger) (OptFollowup, error) {
			rng.env = e
			return nil, nil
		}
	}

	return func(rng *Ranger) (OptFollowup, error) {
		rng.env = trailhead.EnvVarOrEnv(envVar, trailhead.Development)
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the trailhead app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", trailhead.ErrBadConfig)
		}

		rng.l = l
		rng.l.Debug(fmt.Sprintf("using logger %T", l), nil)
		return nil, nil
	}
}

func withDefaultLogger() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = defaultAppLogger(rng.env)
		return nil, nil
	}
}

// WithMetrics records request metrics with col.
// Its Expose handler is served at path, if path is not empty.
func WithMetrics(col *metrics.Collector, path string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if col == nil {
			return nil, fmt.Errorf("%w: nil metrics collector", trailhead.ErrBadConfig)
		}

		rng.metrics = col
		rng.metricsPath = path
		return nil, nil
	}
}

// WithMiddlewares replaces the default set of flow.Handlers every request passes through
// before reaching the router.
func WithMiddlewares(hs ...flow.Handler) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.middlewares = hs
		return nil, nil
	}
}

func withDefaultMiddlewares() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if rng.middlewares == nil {
				rng.middlewares = defaultMiddlewares(rng.env, rng.l)
			}

			return nil
		}, nil
	}
}

// WithRedirects loads the YAML redirect table at path and registers each entry on the router.
// See LoadRedirects.
func WithRedirects(path string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rs, err := LoadRedirects(path)
		if err != nil {
			return nil, err
		}

		return func() error {
			return registerRedirects(rng.Router, rs)
		}, nil
	}
}

// WithRouter exposes the provided *router.Router to the trailhead app.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if r == nil {
			return nil, fmt.Errorf("%w: nil router", trailhead.ErrBadConfig)
		}

		rng.Router = r
		rng.l.Debug(fmt.Sprintf("using router %T", r), nil)
		return nil, nil
	}
}

func withDefaultRouter() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		r, err := defaultRouter(rng.l)
		if err != nil {
			return nil, err
		}

		rng.Router = r
		if path := trailhead.EnvVarOrString(redirectsFileEnvVar, ""); path != "" {
			return WithRedirects(path)(rng)
		}

		return nil, nil
	}
}

// WithServer exposes the *http.Server to the trailhead app.
// The *http.Server's Handler is replaced with the *Ranger's.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", trailhead.ErrBadConfig)
		}

		rng.srv = s
		return nil, nil
	}
}
