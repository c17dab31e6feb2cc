package router

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
)

// A Route maps a path and HTTP method to a chain of handlers.
//
// Method "*" matches any method not registered by another Route with the same Path.
// Path may hold "{name}" placeholders, each capturing one path segment,
// with literal text around them, e.g., "/files/{name}.json".
//
// When a request matches a Route, its Middlewares are called in order, then its Handler.
// A Route with a Name can be looked up and turned back into a path.
type Route struct {
	Name        string
	Method      string
	Path        string
	Handler     flow.Handler
	Middlewares []flow.Handler

	segments []segment
	pattern  string
	prefix   *prefix
	chain    flow.Handler
}

// compile validates a copy of rt and parses its path.
func (rt Route) compile() (*Route, error) {
	rt.Method = strings.ToUpper(strings.TrimSpace(rt.Method))
	if rt.Method == "" {
		return nil, fmt.Errorf("%w: method for route %q", trailhead.ErrMissingData, rt.Path)
	}

	if rt.Handler == nil && len(rt.Middlewares) == 0 {
		return nil, fmt.Errorf("%w: handler for route %q", trailhead.ErrMissingData, rt.Method+" "+rt.Path)
	}

	segs, err := parsePath(rt.Path)
	if err != nil {
		return nil, err
	}

	rt.segments = segs
	rt.Middlewares = append([]flow.Handler(nil), rt.Middlewares...)
	return &rt, nil
}

// MakePath fills the Route's path with params, formatting each value with fmt.Sprint.
// Keys with no placeholder are ignored.
// Placeholders missing from params are left in the path as is.
//
// MakePath does not include the prefix of the Router the Route is registered with;
// use (*Router).MakePath for that.
func (rt *Route) MakePath(params map[string]any) string {
	return fillPath(rt.segments, params)
}

// ParamNames lists the names of the Route's placeholders in path order.
func (rt *Route) ParamNames() []string {
	var names []string
	for _, s := range rt.segments {
		if s.kind == patternSegment {
			names = append(names, s.name)
		}
	}

	return names
}

// Pattern is the Route's path joined to the prefix of the Router it is registered with.
func (rt *Route) Pattern() string { return rt.pattern }

func (rt *Route) String() string { return rt.Method + " " + rt.Path }
