package flow

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/logger"
)

// An ErrorHandler responds to a request whose chain returned err.
type ErrorHandler func(c *Context, err error)

// A ServeOptFn configures the http.Handler returned by Serve.
type ServeOptFn func(*server)

// WithErrorHandler sets the ErrorHandler called when a chain returns an error.
func WithErrorHandler(eh ErrorHandler) ServeOptFn {
	return func(s *server) {
		if eh != nil {
			s.onErr = eh
		}
	}
}

// WithLogger sets the default ErrorHandler to an ErrorResponder using l.
func WithLogger(l logger.Logger) ServeOptFn {
	return func(s *server) {
		s.onErr = ErrorResponder(l)
	}
}

// WithNotFound sets the http.Handler called when every Handler in a chain delegated onward.
func WithNotFound(h http.Handler) ServeOptFn {
	return func(s *server) {
		if h != nil {
			s.notFound = h
		}
	}
}

type server struct {
	h        Handler
	notFound http.Handler
	onErr    ErrorHandler
}

// Serve adapts h into an http.Handler.
//
// Each request gets a fresh *Context.
// If the chain calls its final next, the NotFound handler responds (http.NotFound by default).
// If the chain returns an error, the ErrorHandler responds (ErrorResponder without a logger by default).
func Serve(h Handler, opts ...ServeOptFn) http.Handler {
	s := &server{
		h:        h,
		notFound: http.NotFoundHandler(),
		onErr:    ErrorResponder(nil),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ServeHTTP runs the chain for the request.
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := NewContext(w, r)
	err := s.h(c, func() error {
		s.notFound.ServeHTTP(c.Writer, c.Request)
		return nil
	})
	if err != nil {
		s.onErr(c, err)
	}
}

// ErrorResponder constructs an ErrorHandler that writes the status StatusCode picks for an error.
//
// Errors exposing an Allowed() []string method set the "Allow" header.
// Errors resulting in a 400 that marshal to JSON are written as the JSON body.
// Errors resulting in a 5xx are logged with l, if l is not nil.
func ErrorResponder(l logger.Logger) ErrorHandler {
	return func(c *Context, err error) {
		code := StatusCode(err)

		var allowed interface{ Allowed() []string }
		if errors.As(err, &allowed) {
			c.Writer.Header().Set("Allow", strings.Join(allowed.Allowed(), ", "))
		}

		if code >= http.StatusInternalServerError && l != nil {
			l.Error(err.Error(), &logger.LogContext{
				Error:   err,
				Request: c.Request,
				Route:   c.Routing.Pattern,
			})
		}

		var m json.Marshaler
		if code == http.StatusBadRequest && errors.As(err, &m) {
			if b, merr := m.MarshalJSON(); merr == nil {
				c.Writer.Header().Set("Content-Type", "application/json")
				c.Writer.WriteHeader(code)
				c.Writer.Write(b)
				return
			}
		}

		http.Error(c.Writer, http.StatusText(code), code)
	}
}

// StatusCode picks the HTTP status code describing err.
//
// Errors exposing a StatusCode() int method choose their own.
// Errors wrapping trailhead.ErrNotValid are a 400; trailhead.ErrNotExist, a 404.
// Everything else is a 500.
func StatusCode(err error) int {
	var sc interface{ StatusCode() int }
	switch {
	case errors.As(err, &sc):
		return sc.StatusCode()
	case errors.Is(err, trailhead.ErrNotValid):
		return http.StatusBadRequest
	case errors.Is(err, trailhead.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
