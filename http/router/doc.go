/*
Package router routes requests to handlers by path and HTTP method.

A [Router] keeps its [Route]s in a trie keyed by path segments.
A path is literal text and "{name}" placeholders,
each capturing one segment of a request's path, possibly with literal text around it:

	r, _ := router.New()
	r.Get("/users/{id}", showUser)
	r.Get("/files/{name}.json", showFile)
	r.Any("/health", health)

Literal segments win over placeholders at the same position, whatever order they were registered in.
Placeholders are tried in the order they were registered.
Once a segment has matched, the Router does not back up to try another;
a trie that needs that is better served by a literal route.

A Router plugs into a chain of [flow.Handler]s through [Router.Middleware].
When no Route matches a request's path, the Router calls next and lets whatever follows it decide.
When a Route matches the path but not the method, the Router returns a [*MethodNotAllowedError],
which [flow.ErrorResponder] turns into a 405 with an "Allow" header.
A Router is also an [http.Handler], answering unmatched requests with a 404.

Registering routes, middlewares and param hooks happens before serving requests.
The first call to Middleware, ServeHTTP or Freeze freezes the Router;
it is safe for concurrent use from then on.

Named routes can be turned back into paths with [Router.MakePath]:

	r.Handle(router.Route{Name: "user", Method: http.MethodGet, Path: "/users/{id}", Handler: showUser})
	path, _ := r.MakePath("user", map[string]any{"id": 7}) // "/users/7"

# Subrouters

[Router.Subrouter] scopes a Router under a prefix.
Requests no Route of the parent matches, by path or by method, are offered to its subrouters.
A Route that matched calls the same next as the parent would have,
so subrouters never see requests a parent Route passed on.
Names are shared across a Router and its subrouters.
*/
package router
