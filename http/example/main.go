/*
Package main provides a toy example use of trailhead's http stack.

Run it and try:

	curl localhost:3000/users/7
	curl localhost:3000/users/seven
	curl -X DELETE localhost:3000/users/7
	curl localhost:3000/orgs/xy/members?sort=desc
	curl localhost:3000/metrics
*/
package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/metrics"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/ranger"
)

type handler struct {
	*ranger.Ranger
	parser *req.Parser
}

func writeJSON(c *flow.Context, data any) error {
	c.Writer.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(c.Writer).Encode(data)
}

// index lists every registered route.
func (h handler) index(c *flow.Context, _ flow.Next) error {
	var routes []string
	for _, rt := range h.Routes() {
		routes = append(routes, rt.Method+" "+rt.Pattern())
	}

	return writeJSON(c, map[string]any{"routes": routes})
}

func (h handler) showUser(c *flow.Context, _ flow.Next) error {
	self, err := h.MakePath("user", map[string]any{"id": c.Param("id")})
	if err != nil {
		return err
	}

	return writeJSON(c, map[string]any{"id": c.Param("id"), "self": self})
}

func (h handler) listMembers(c *flow.Context, _ flow.Next) error {
	var query struct {
		Sort string `schema:"sort" validate:"omitempty,oneof=asc desc"`
	}
	if err := h.parser.ParseQueryParams(c.Request.URL.Query(), &query); err != nil {
		return err
	}

	return writeJSON(c, map[string]any{"org": c.Param("org"), "sort": query.Sort, "members": []string{}})
}

func main() {
	col, err := metrics.New(nil)
	if err != nil {
		log.Fatal(err)
	}

	rng, err := ranger.New(ranger.WithMetrics(col, "/metrics"))
	if err != nil {
		log.Fatal(err)
	}

	h := handler{Ranger: rng, parser: req.NewParser()}

	rng.Param("id", req.Int("id")).
		Get("/", h.index).
		Handle(router.Route{Name: "user", Method: http.MethodGet, Path: "/users/{id}", Handler: h.showUser}).
		Redirect("/people/{id}", "/users", http.StatusMovedPermanently)

	orgs, err := rng.Subrouter("/orgs/{org}")
	if err != nil {
		log.Fatal(err)
	}
	orgs.Param("org", req.Var("org", "alphanum,max=32")).
		Get("/members", h.listMembers)

	if err := rng.Guide(); err != nil {
		log.Fatal(err)
	}
}
