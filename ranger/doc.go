/*
Package ranger initializes and manages a trailhead app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
It embeds the [*router.Router] the app registers its routes on.

	rng, err := ranger.New()
	if err != nil {
		log.Fatal(err)
	}

	rng.Get("/users/{id}", showUser)
	log.Fatal(rng.Guide())

[*Ranger.Guide] begins a trailhead app's web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the trailhead web server.

Upon calling [*Ranger.Guide], the router is frozen and all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown]
or send a signal [*Ranger.Guide] listens for.

Every request passes through these middlewares before reaching the router, unless replaced with [WithMiddlewares]:
panic reporting, request IDs, proxy headers, IP address injection, request logging,
forcing HTTPS outside development, CORS, compression, and rate limiting.

# Configuration

A developer configures a trailhead app through environment variables and [RangerOption]s.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [trailhead.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - RATE_LIMIT_BURST: the number of requests a single IP address can make at once; default: 20
  - RATE_LIMIT_RPS: the number of requests per second a single IP address can sustain; default: 5
  - REDIRECTS_FILE: a YAML file of redirects to register on the router; cf. [LoadRedirects]
  - ROUTER_PREFIX: a path pattern scoping every route, e.g., /api/{version}
  - SENTRY_DSN: the DSN errors are reported to Sentry with; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SHUTDOWN_TIMEOUT: the time - as understood by [time.ParseDuration] - in-flight requests have to finish on shutdown; default: 5s
*/
package ranger
