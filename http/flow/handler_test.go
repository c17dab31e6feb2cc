package flow_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/middleware"
)

func record(order *[]string, name string) flow.Handler {
	return func(c *flow.Context, next flow.Next) error {
		*order = append(*order, name+":in")
		err := next()
		*order = append(*order, name+":out")
		return err
	}
}

func newContext(method, path string) (*flow.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	return flow.NewContext(w, httptest.NewRequest(method, path, nil)), w
}

func TestCompose(t *testing.T) {
	// Arrange
	var order []string
	h := flow.Compose(record(&order, "a"), nil, record(&order, "b"))
	c, _ := newContext(http.MethodGet, "/")

	// Act
	err := h(c, func() error {
		order = append(order, "next")
		return nil
	})

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"a:in", "b:in", "next", "b:out", "a:out"}, order)

	// Arrange
	order = nil

	// Act
	err = h(c, nil)

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"a:in", "b:in", "b:out", "a:out"}, order)
}

func TestComposeStops(t *testing.T) {
	// Arrange
	var order []string
	stop := func(*flow.Context, flow.Next) error {
		order = append(order, "stop")
		return nil
	}
	h := flow.Compose(record(&order, "a"), stop, record(&order, "b"))
	c, _ := newContext(http.MethodGet, "/")

	// Act
	err := h(c, func() error {
		order = append(order, "next")
		return nil
	})

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"a:in", "stop", "a:out"}, order)
}

func TestComposeNextCalledTwice(t *testing.T) {
	// Arrange
	calls := 0
	twice := func(_ *flow.Context, next flow.Next) error {
		if err := next(); err != nil {
			return err
		}
		return next()
	}
	h := flow.Compose(twice, func(*flow.Context, flow.Next) error {
		calls++
		return nil
	})
	c, _ := newContext(http.MethodGet, "/")

	// Act
	err := h(c, nil)

	// Assert
	require.ErrorIs(t, err, flow.ErrNextCalledTwice)
	require.Equal(t, 1, calls)
}

func TestComposeError(t *testing.T) {
	// Arrange
	expected := context.Canceled
	var order []string
	h := flow.Compose(record(&order, "a"), func(*flow.Context, flow.Next) error { return expected })
	c, _ := newContext(http.MethodGet, "/")

	// Act
	err := h(c, nil)

	// Assert
	require.Equal(t, expected, err)
	require.Equal(t, []string{"a:in", "a:out"}, order)
}

func TestWrap(t *testing.T) {
	// Arrange
	nextCalled := false
	h := flow.WrapFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	c, w := newContext(http.MethodGet, "/")

	// Act
	err := h(c, func() error {
		nextCalled = true
		return nil
	})

	// Assert
	require.Nil(t, err)
	require.False(t, nextCalled)
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestFromAdapter(t *testing.T) {
	type key struct{}

	// Arrange
	adapter := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Adapted", "true")
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key{}, "value")))
		})
	}
	var actual any
	h := flow.Compose(flow.FromAdapter(adapter), func(c *flow.Context, _ flow.Next) error {
		actual = c.Request.Context().Value(key{})
		return context.DeadlineExceeded
	})
	c, w := newContext(http.MethodGet, "/")

	// Act
	err := h(c, nil)

	// Assert
	require.Equal(t, context.DeadlineExceeded, err)
	require.Equal(t, "value", actual)
	require.Equal(t, "true", w.Header().Get("X-Adapted"))

	// Arrange
	nextCalled := false
	h = flow.FromAdapter(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	})
	c, w = newContext(http.MethodGet, "/")

	// Act
	err = h(c, func() error {
		nextCalled = true
		return nil
	})

	// Assert
	require.Nil(t, err)
	require.False(t, nextCalled)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Arrange
	h = flow.FromAdapter(middleware.NoopAdapter)
	c, _ = newContext(http.MethodGet, "/")

	// Act
	err = h(c, func() error {
		nextCalled = true
		return nil
	})

	// Assert
	require.Nil(t, err)
	require.True(t, nextCalled)
}

func TestContext(t *testing.T) {
	// Arrange
	c, _ := newContext(http.MethodPost, "/a/b")
	c.Params["s"] = "str"
	c.Params["n"] = 7

	// Act + Assert
	require.Equal(t, "/a/b", c.Path())
	require.Equal(t, http.MethodPost, c.Method())
	require.Equal(t, "str", c.ParamString("s"))
	require.Equal(t, "7", c.ParamString("n"))
	require.Equal(t, 7, c.Param("n"))
	require.Empty(t, c.ParamString("missing"))
	require.Nil(t, c.Param("missing"))
	require.False(t, c.Routing.Matched())

	// Act
	path, method := c.Routing.Original(c.Request)
	c.Request.URL.Path = "/changed"
	path2, method2 := c.Routing.Original(c.Request)

	// Assert
	require.Equal(t, "/a/b", path)
	require.Equal(t, http.MethodPost, method)
	require.Equal(t, path, path2)
	require.Equal(t, method, method2)
}
