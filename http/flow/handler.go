package flow

import (
	"net/http"

	"github.com/xy-planning-network/trailhead/http/middleware"
)

// Next continues a chain of Handlers.
type Next func() error

// A Handler does its part of handling a request, calling next to continue the chain.
type Handler func(c *Context, next Next) error

// Compose joins handlers into a single Handler, in order.
// The first handler is outermost: it runs first and regains control last.
//
// The next passed to the composed Handler is called once the last handler calls its next.
// A nil next ends the chain instead.
//
// Calling next more than once from the same handler returns ErrNextCalledTwice.
func Compose(handlers ...Handler) Handler {
	hs := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}

	return func(c *Context, next Next) error {
		index := -1
		var dispatch func(i int) error
		dispatch = func(i int) error {
			if i <= index {
				return ErrNextCalledTwice
			}
			index = i

			if i == len(hs) {
				if next == nil {
					return nil
				}
				return next()
			}

			return hs[i](c, func() error { return dispatch(i + 1) })
		}

		return dispatch(0)
	}
}

// Wrap converts h into a Handler ending a chain.
// The Handler never calls next.
func Wrap(h http.Handler) Handler {
	return func(c *Context, _ Next) error {
		h.ServeHTTP(c.Writer, c.Request)
		return nil
	}
}

// WrapFunc converts fn into a Handler ending a chain.
func WrapFunc(fn http.HandlerFunc) Handler { return Wrap(fn) }

// FromAdapter converts a into a Handler.
//
// When a calls the http.Handler it wraps, the chain continues
// with whatever http.ResponseWriter and *http.Request a passed along.
// If a responds without calling it, the chain stops there.
func FromAdapter(a middleware.Adapter) Handler {
	return func(c *Context, next Next) error {
		var err error
		a(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Writer, c.Request = w, r
			err = next()
		})).ServeHTTP(c.Writer, c.Request)

		return err
	}
}
