package router

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/logger"
)

// A ParamFunc validates or converts the raw value captured for a path parameter.
// The value it returns replaces the raw value in flow.Context.Params.
// An error it returns ends handling of the request and is returned as is.
type ParamFunc func(c *flow.Context, raw string) (any, error)

// A RouterOptFn configures a *Router when constructing a new one.
type RouterOptFn func(*Router) error

// WithLogger sets the logger.Logger the Router logs registrations and request errors with.
func WithLogger(l logger.Logger) RouterOptFn {
	return func(r *Router) error {
		if l != nil {
			r.logger = l
		}

		return nil
	}
}

// WithPrefix scopes the Router under pattern.
// Requests whose path does not begin with pattern pass the Router by.
// Values captured by pattern join those captured by route paths.
//
// e.g., WithPrefix("/orgs/{org}/") routes "/orgs/xy/users" with the route "/users" and org = "xy".
func WithPrefix(pattern string) RouterOptFn {
	return func(r *Router) error {
		p, err := parsePrefix(pattern)
		if err != nil {
			return err
		}

		r.prefix = p
		return nil
	}
}

// A Router routes requests to the Route matching their path and method.
//
// Routes, middlewares and param hooks are registered while setting up an application.
// Calling Middleware, ServeHTTP or Freeze freezes the Router:
// from then on it is read-only, safe for concurrent use,
// and any further registration fails with ErrFrozen.
type Router struct {
	logger      logger.Logger
	middlewares []flow.Handler
	named       map[string]*Route
	params      map[string]ParamFunc
	prefix      *prefix
	root        *node
	routes      []*Route
	subs        []*Router

	dispatch   flow.Handler
	frozen     atomic.Bool
	freezeOnce sync.Once
	serve      http.Handler
	serveOnce  sync.Once
}

// New constructs a *Router from the provided options.
func New(opts ...RouterOptFn) (*Router, error) {
	r := &Router{
		logger: logger.NewTrailLogger(),
		named:  make(map[string]*Route),
		params: make(map[string]ParamFunc),
		root:   new(node),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add registers route, returning the registered copy of it.
//
// Add fails with ErrBadPattern if route.Path is malformed,
// ErrDuplicateName if another Route of the Router, its parent or its subrouters has route.Name,
// ErrDuplicateRoute if another Route has the same method and path,
// and ErrFrozen once the Router is frozen.
func (r *Router) Add(route Route) (*Route, error) {
	if r.frozen.Load() {
		return nil, fmt.Errorf("%w: cannot add route %s %s", ErrFrozen, route.Method, route.Path)
	}

	rt, err := route.compile()
	if err != nil {
		return nil, err
	}

	if rt.Name != "" {
		if _, ok := r.named[rt.Name]; ok {
			return nil, duplicateNameError(rt.Name)
		}
	}

	if err := r.root.insert(rt); err != nil {
		return nil, err
	}

	rt.pattern = rt.Path
	if r.prefix != nil {
		rt.pattern = joinPaths(r.prefix.raw, rt.Path)
		rt.prefix = r.prefix
	}

	if rt.Name != "" {
		r.named[rt.Name] = rt
	}
	r.routes = append(r.routes, rt)

	lc := &logger.LogContext{Route: rt.pattern}
	if rt.Name != "" {
		lc.Data = map[string]any{"name": rt.Name}
	}
	r.logger.Debug("registered "+rt.Method+" "+rt.pattern, lc)

	return rt, nil
}

// Handle registers route, panicking if it cannot be registered.
func (r *Router) Handle(route Route) *Router {
	if _, err := r.Add(route); err != nil {
		panic(err)
	}

	return r
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the middlewares on each Route.
// Any middlewares already assigned to a Route are appended to middlewares,
// so are called after the shared set.
//
// HandleRoutes panics if any Route cannot be registered.
func (r *Router) HandleRoutes(routes []Route, middlewares ...flow.Handler) *Router {
	for _, route := range routes {
		mws := make([]flow.Handler, 0, len(middlewares)+len(route.Middlewares))
		mws = append(mws, middlewares...)
		route.Middlewares = append(mws, route.Middlewares...)
		r.Handle(route)
	}

	return r
}

// Get registers handlers for GET requests to path.
// The last of handlers is the Route's Handler; the rest are its Middlewares.
func (r *Router) Get(path string, handlers ...flow.Handler) *Router {
	return r.Handle(newRoute(http.MethodGet, path, handlers))
}

// Post registers handlers for POST requests to path.
func (r *Router) Post(path string, handlers ...flow.Handler) *Router {
	return r.Handle(newRoute(http.MethodPost, path, handlers))
}

// Put registers handlers for PUT requests to path.
func (r *Router) Put(path string, handlers ...flow.Handler) *Router {
	return r.Handle(newRoute(http.MethodPut, path, handlers))
}

// Patch registers handlers for PATCH requests to path.
func (r *Router) Patch(path string, handlers ...flow.Handler) *Router {
	return r.Handle(newRoute(http.MethodPatch, path, handlers))
}

// Delete registers handlers for DELETE requests to path.
func (r *Router) Delete(path string, handlers ...flow.Handler) *Router {
	return r.Handle(newRoute(http.MethodDelete, path, handlers))
}

// Any registers handlers for requests to path with any method
// not registered by another Route at path.
func (r *Router) Any(path string, handlers ...flow.Handler) *Router {
	return r.Handle(newRoute(anyMethod, path, handlers))
}

// Redirect redirects requests to from with any method to the URL to.
// See RedirectRoute.
func (r *Router) Redirect(from, to string, code int) *Router {
	return r.Handle(RedirectRoute(from, to, code))
}

// RedirectRoute constructs a Route redirecting requests to from with any method to the URL to.
// A code that is not a 3xx redirect status falls back to http.StatusFound.
func RedirectRoute(from, to string, code int) Route {
	if code < http.StatusMultipleChoices || code > http.StatusPermanentRedirect {
		code = http.StatusFound
	}

	redirect := func(c *flow.Context, _ flow.Next) error {
		http.Redirect(c.Writer, c.Request, to, code)
		return nil
	}

	return Route{Method: anyMethod, Path: from, Handler: redirect}
}

func newRoute(method, path string, handlers []flow.Handler) Route {
	rt := Route{Method: method, Path: path}
	if n := len(handlers); n > 0 {
		rt.Middlewares = handlers[:n-1]
		rt.Handler = handlers[n-1]
	}

	return rt
}

// Use appends middlewares to those called before the Middlewares of whichever Route matches.
// Middlewares are not called for requests the Router passes by.
//
// Use panics with ErrFrozen once the Router is frozen.
func (r *Router) Use(middlewares ...flow.Handler) *Router {
	if r.frozen.Load() {
		panic(fmt.Errorf("%w: cannot use middlewares", ErrFrozen))
	}

	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// Param sets fn as the hook converting values captured for the parameter name.
// Captured values without a hook reach handlers as raw strings.
//
// Param panics with ErrFrozen once the Router is frozen.
func (r *Router) Param(name string, fn ParamFunc) *Router {
	if r.frozen.Load() {
		panic(fmt.Errorf("%w: cannot set param %q", ErrFrozen, name))
	}

	r.params[name] = fn
	return r
}

// Subrouter constructs a *Router scoped under pattern, itself under the Router's prefix.
// The *Router inherits the Router's logger, middlewares and param hooks as they are when Subrouter is called.
// Route names are shared between the Router and all its subrouters.
//
// Requests no Route of the Router matches are offered to its subrouters,
// in the order they were constructed, before being passed on.
// A request whose path matches a Route of the Router but not its method is offered as well;
// it fails with a *MethodNotAllowedError only if no subrouter matches it either.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(pattern string) (*Router, error) {
	if r.frozen.Load() {
		return nil, fmt.Errorf("%w: cannot add subrouter %q", ErrFrozen, pattern)
	}

	if r.prefix != nil {
		pattern = joinPaths(r.prefix.raw, pattern)
	}

	sub, err := New(WithLogger(r.logger), WithPrefix(pattern))
	if err != nil {
		return nil, err
	}

	sub.named = r.named
	sub.middlewares = append(sub.middlewares, r.middlewares...)
	for name, fn := range r.params {
		sub.params[name] = fn
	}

	r.subs = append(r.subs, sub)
	return sub, nil
}

// NamedRoute returns the Route registered with name on the Router, its parent or its subrouters.
func (r *Router) NamedRoute(name string) (*Route, error) {
	rt, ok := r.named[name]
	if !ok {
		return nil, unknownRouteError(name)
	}

	return rt, nil
}

// MakePath fills the path of the Route registered with name,
// including the prefix of the Router it is registered with, with params.
// See (*Route).MakePath.
func (r *Router) MakePath(name string, params map[string]any) (string, error) {
	rt, err := r.NamedRoute(name)
	if err != nil {
		return "", err
	}

	path := rt.MakePath(params)
	if rt.prefix != nil {
		path = joinPaths(rt.prefix.makePath(params), path)
	}

	return path, nil
}

// Routes lists the registered Routes in the order they were registered.
func (r *Router) Routes() []*Route {
	return append([]*Route(nil), r.routes...)
}

// Frozen reports whether the Router is frozen.
func (r *Router) Frozen() bool { return r.frozen.Load() }

// Freeze ends registration on the Router and its subrouters,
// composing each Route's chain from the Router's middlewares and the Route's own.
// Calling Freeze more than once has no further effect.
func (r *Router) Freeze() {
	r.freezeOnce.Do(func() {
		r.frozen.Store(true)

		for _, rt := range r.routes {
			hs := make([]flow.Handler, 0, len(r.middlewares)+len(rt.Middlewares)+1)
			hs = append(hs, r.middlewares...)
			hs = append(hs, rt.Middlewares...)
			hs = append(hs, rt.Handler)
			rt.chain = flow.Compose(hs...)
		}

		for _, sub := range r.subs {
			sub.Freeze()
		}

		r.dispatch = func(c *flow.Context, next flow.Next) error {
			ok, err := r.route(c, next)
			if !ok && err == nil {
				return next()
			}

			return err
		}
	})
}

// Middleware freezes the Router and returns it as a flow.Handler.
//
// The flow.Handler calls the chain of the Route matching the request,
// or calls next if none matches.
// If Routes match the path but none the method, it returns a *MethodNotAllowedError.
func (r *Router) Middleware() flow.Handler {
	r.Freeze()
	return r.dispatch
}

// ServeHTTP freezes the Router and routes the request,
// responding with a 404 if no Route matches the request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.serveOnce.Do(func() {
		r.serve = flow.Serve(r.Middleware(), flow.WithLogger(r.logger))
	})

	r.serve.ServeHTTP(w, req)
}

// route offers the request to the Router, then to its subrouters, until a Route matches.
// ok reports whether a Route matched, in which case err is what its chain returned.
// Otherwise err is nil or a *MethodNotAllowedError listing the methods of every Route matching the path.
func (r *Router) route(c *flow.Context, next flow.Next) (ok bool, err error) {
	ok, err = r.match(c, next)
	if ok {
		return ok, err
	}

	var mna *MethodNotAllowedError
	if err != nil && !errors.As(err, &mna) {
		return false, err
	}

	for _, sub := range r.subs {
		ok, err := sub.route(c, next)
		if ok {
			return ok, err
		}

		var subMNA *MethodNotAllowedError
		switch {
		case !errors.As(err, &subMNA):
		case mna == nil:
			mna = subMNA
		default:
			mna.merge(subMNA)
		}
	}

	if mna == nil {
		return false, nil
	}

	return false, mna
}

// match routes the request to the chain of a Route of the Router, called with next.
// ok reports whether a Route matched.
func (r *Router) match(c *flow.Context, next flow.Next) (ok bool, err error) {
	path, method := c.Routing.Original(c.Request)

	caps := make([]capture, 0, 4)
	if r.prefix != nil {
		rest, ok := r.prefix.match(path, &caps)
		if !ok {
			return false, nil
		}
		path = rest
	}

	rt, err := r.root.find(path, method, &caps)
	var mna *MethodNotAllowedError
	switch {
	case errors.Is(err, errNotFound):
		return false, nil
	case errors.As(err, &mna):
		mna.Path = c.Routing.Path
		return false, mna
	case err != nil:
		return false, err
	}

	params := make(flow.Params, len(caps))
	for _, cp := range caps {
		fn, ok := r.params[cp.name]
		if !ok {
			params[cp.name] = cp.value
			continue
		}

		v, err := fn(c, cp.value)
		if err != nil {
			return true, err
		}
		params[cp.name] = v
	}

	if c.Params == nil {
		c.Params = make(flow.Params, len(params))
	}
	for k, v := range params {
		c.Params[k] = v
	}

	c.Routing.Name = rt.Name
	c.Routing.Pattern = rt.pattern

	return true, rt.chain(c, next)
}
