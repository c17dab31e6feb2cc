package flow

import (
	"fmt"
	"net/http"
)

// Params holds the values captured from a request path, keyed by parameter name.
// Values are the raw path fragments unless a parameter hook converted them.
type Params map[string]any

// Routing is the routing state a request carries between routers.
//
// The first router to see a request records its original path and method;
// every router after that matches against those rather than anything rewritten since.
type Routing struct {
	// Path is the request's original URL path.
	Path string

	// Method is the request's original HTTP method.
	Method string

	// Name is the name of the route that matched the request, if it is named.
	Name string

	// Pattern is the path pattern of the route that matched the request.
	Pattern string

	seeded bool
}

// Original returns the original path and method of r,
// recording them the first time Original is called.
func (rt *Routing) Original(r *http.Request) (path, method string) {
	if !rt.seeded {
		rt.Path = r.URL.Path
		rt.Method = r.Method
		rt.seeded = true
	}

	return rt.Path, rt.Method
}

// Matched reports whether a router has matched a route for the request.
func (rt *Routing) Matched() bool { return rt.Pattern != "" }

// A Context is the per-request object passed through a chain of Handlers.
// A Context is not safe for use by multiple goroutines.
type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request

	// Params accumulates path parameters across every router that matched the request.
	Params Params

	Routing Routing
}

// NewContext constructs a *Context for the request.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{Writer: w, Request: r, Params: make(Params)}
}

// Path returns the request's current URL path.
func (c *Context) Path() string { return c.Request.URL.Path }

// Method returns the request's current HTTP method.
func (c *Context) Method() string { return c.Request.Method }

// Param returns the value captured for name, or nil.
func (c *Context) Param(name string) any { return c.Params[name] }

// ParamString returns the value captured for name formatted as a string,
// or the empty string if name was not captured.
func (c *Context) ParamString(name string) string {
	v, ok := c.Params[name]
	if !ok {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
