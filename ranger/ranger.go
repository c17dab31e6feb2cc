package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/metrics"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/logger"
)

// A Ranger hosts a *router.Router behind the middlewares and web server every trailhead app needs.
type Ranger struct {
	*router.Router

	cancel      context.CancelFunc
	ctx         context.Context
	env         trailhead.Environment
	l           logger.Logger
	metrics     *metrics.Collector
	metricsPath string
	middlewares []flow.Handler
	srv         *http.Server
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", trailhead.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", trailhead.ErrBadConfig, err)
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	return r, nil
}

func (r *Ranger) EmitEnv() trailhead.Environment { return r.env }
func (r *Ranger) EmitLogger() logger.Logger      { return r.l }

// Handler freezes the router and returns the http.Handler serving the trailhead app.
//
// Requests pass through the Ranger's middlewares, then its metrics collector, if set,
// and then the router.
// Requests no route matches are answered with a 404.
func (r *Ranger) Handler() http.Handler {
	hs := make([]flow.Handler, 0, len(r.middlewares)+2)
	hs = append(hs, r.middlewares...)
	if r.metrics != nil {
		hs = append(hs, r.metrics.Handler())
	}
	hs = append(hs, r.Router.Middleware())

	h := flow.Serve(flow.Compose(hs...), flow.WithLogger(r.l))
	if r.metrics == nil || r.metricsPath == "" {
		return h
	}

	mux := http.NewServeMux()
	mux.Handle(r.metricsPath, r.metrics.Expose())
	mux.Handle("/", h)

	return mux
}

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		r.srv.Handler = r.Handler()
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		r.cancel()
		return err
	case <-r.ctx.Done():
		return r.shutdown()
	}
}

// Shutdown signals the web server started by Guide to stop.
// Guide returns once the web server has shut down.
func (r *Ranger) Shutdown() error {
	r.cancel()
	return nil
}

// shutdown gracefully stops the web server,
// giving in-flight requests up to SHUTDOWN_TIMEOUT to finish.
func (r *Ranger) shutdown() error {
	timeout := trailhead.EnvVarOrDuration(shutdownTimeoutEnvVar, DefaultShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
