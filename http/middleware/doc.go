/*
The middleware package defines what a middleware is in trailhead and a set of basic middlewares.

The available middlewares are:
- Compress
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- ProxyHeaders
- RateLimit
- ReportPanic
- RequestID

Each is an [Adapter] and composes with [Chain].
A router chain takes them through flow.FromAdapter:

	vs := middleware.NewVisitors(5, 20)
	r.Use(
		flow.FromAdapter(middleware.ReportPanic(env)),
		flow.FromAdapter(middleware.RateLimit(vs)),
		flow.FromAdapter(middleware.RequestID()),
		flow.FromAdapter(middleware.LogRequest(log)),
	)
*/
package middleware
