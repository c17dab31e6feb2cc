package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/router"
)

var benchPaths = []string{
	"/",
	"/users",
	"/users/list/active",
	"/users/{id}",
	"/users/{id}/settings",
	"/orgs/{org}/teams/{team}",
	"/orgs/{org}/teams/{team}/members",
	"/files/{name}.json",
}

var benchRequests = []string{
	"/users/list/active",
	"/users/42/settings",
	"/orgs/xy/teams/red/members",
	"/files/report.json",
}

func BenchmarkRouter(b *testing.B) {
	r, _ := router.New()
	for _, path := range benchPaths {
		r.Get(path, func(*flow.Context, flow.Next) error { return nil })
	}
	h := r.Middleware()

	reqs := make([]*http.Request, 0, len(benchRequests))
	for _, path := range benchRequests {
		reqs = append(reqs, httptest.NewRequest(http.MethodGet, path, nil))
	}
	w := httptest.NewRecorder()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := reqs[i%len(reqs)]
		if err := h(flow.NewContext(w, req), nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGorillaMux(b *testing.B) {
	m := mux.NewRouter()
	for _, path := range benchPaths {
		m.HandleFunc(path, func(http.ResponseWriter, *http.Request) {}).Methods(http.MethodGet)
	}

	reqs := make([]*http.Request, 0, len(benchRequests))
	for _, path := range benchRequests {
		reqs = append(reqs, httptest.NewRequest(http.MethodGet, path, nil))
	}
	w := httptest.NewRecorder()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.ServeHTTP(w, reqs[i%len(reqs)])
	}
}
