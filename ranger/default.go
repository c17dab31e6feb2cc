package ranger

import (
	"compress/gzip"
	"context"
	"net"
	"net/http"
	"time"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/logger"
	"golang.org/x/time/rate"
)

const (
	// CORS defaults
	corsOriginEnvVar = "CORS_ORIGIN"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	// Rate limit defaults
	rateLimitRPSEnvVar    = "RATE_LIMIT_RPS"
	DefaultRateLimitRPS   = 5.0
	rateLimitBurstEnvVar  = "RATE_LIMIT_BURST"
	DefaultRateLimitBurst = 20

	// Router defaults
	redirectsFileEnvVar = "REDIRECTS_FILE"
	routerPrefixEnvVar  = "ROUTER_PREFIX"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
	shutdownTimeoutEnvVar     = "SHUTDOWN_TIMEOUT"
	DefaultShutdownTimeout    = 5 * time.Second
)

// defaultOpts are the RangerOptions every *Ranger is constructed with
// before the RangerOptions passed into New.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(environmentEnvVar),
		withDefaultLogger(),
		withDefaultRouter(),
		withDefaultMiddlewares(),
	}
}

// defaultAppLogger constructs a logger.Logger configured for use in the application.
func defaultAppLogger(env trailhead.Environment) logger.Logger {
	l := logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
	)
	l.Debug("setting up app logger", nil)

	return l
}

// defaultRouter constructs a *router.Router scoped under the ROUTER_PREFIX env var, if set.
func defaultRouter(l logger.Logger) (*router.Router, error) {
	opts := []router.RouterOptFn{router.WithLogger(l)}
	if prefix := trailhead.EnvVarOrString(routerPrefixEnvVar, ""); prefix != "" {
		opts = append(opts, router.WithPrefix(prefix))
	}

	return router.New(opts...)
}

// defaultMiddlewares constructs the flow.Handlers every request passes through
// before reaching the router, in the order they are called.
func defaultMiddlewares(env trailhead.Environment, l logger.Logger) []flow.Handler {
	visitors := middleware.NewVisitors(
		rate.Limit(trailhead.EnvVarOrFloat(rateLimitRPSEnvVar, DefaultRateLimitRPS)),
		trailhead.EnvVarOrInt(rateLimitBurstEnvVar, DefaultRateLimitBurst),
	)

	adapters := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RequestID(),
		middleware.ProxyHeaders(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.ForceHTTPS(env),
		middleware.CORS(trailhead.EnvVarOrString(corsOriginEnvVar, "")),
		middleware.Compress(gzip.DefaultCompression),
		middleware.RateLimit(visitors),
	}

	hs := make([]flow.Handler, 0, len(adapters))
	for _, a := range adapters {
		hs = append(hs, flow.FromAdapter(a))
	}

	return hs
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := trailhead.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         trailhead.EnvVarOrString(hostEnvVar, DefaultHost) + port,
		IdleTimeout:  trailhead.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  trailhead.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: trailhead.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := trailhead.EnvVarOrString(key, "")
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
