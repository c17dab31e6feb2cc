/*
Package flow defines the per-request object handed through a trailhead middleware chain
and the onion-style composition of handlers that operate on it.

A [Handler] receives the request's [*Context] and a [Next] continuation.
A Handler may run code before calling next, after it returns, or not call it at all,
in which case the chain stops there.

	func timing(c *flow.Context, next flow.Next) error {
		start := time.Now()
		err := next()
		c.Writer.Header().Set("X-Elapsed", time.Since(start).String())
		return err
	}

Errors returned by a Handler travel back up the chain unmodified.
[Serve] adapts a Handler into an [http.Handler], calling a NotFound handler
when the whole chain delegates onward and an ErrorHandler when it returns an error.

Middlewares written as [middleware.Adapter] join a chain through [FromAdapter];
plain [http.Handler] endpoints join through [Wrap].
*/
package flow
