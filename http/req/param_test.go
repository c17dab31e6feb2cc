package req_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/http/router"
)

type color string

func (c color) String() string { return string(c) }
func (c color) Valid() error {
	switch c {
	case "red", "blue":
		return nil
	default:
		return trailhead.ErrNotValid
	}
}

func TestParamFuncs(t *testing.T) {
	id := uuid.New()

	tcs := []struct {
		name     string
		fn       router.ParamFunc
		raw      string
		expected any
		rule     string
	}{
		{"Int", req.Int("p"), "12", 12, ""},
		{"Int-Negative", req.Int("p"), "-3", -3, ""},
		{"Int-Bad", req.Int("p"), "twelve", nil, "must be int"},
		{"UUID", req.UUID("p"), id.String(), id, ""},
		{"UUID-Bad", req.UUID("p"), "not-a-uuid", nil, "must be uuid"},
		{"OneOf", req.OneOf("p", "asc", "desc"), "desc", "desc", ""},
		{"OneOf-Bad", req.OneOf("p", "asc", "desc"), "up", nil, "oneof=asc desc"},
		{"Enum", req.Enum("p", func(s string) trailhead.Enumerable { return color(s) }), "red", color("red"), ""},
		{"Enum-Bad", req.Enum("p", func(s string) trailhead.Enumerable { return color(s) }), "green", nil, "enum"},
		{"Enum-Nil", req.Enum("p", func(string) trailhead.Enumerable { return nil }), "red", nil, "enum"},
		{"Var", req.Var("p", "alphanum,max=8"), "abc123", "abc123", ""},
		{"Var-Bad", req.Var("p", "alphanum,max=8"), "abc-123", nil, "alphanum"},
		{"Var-Too-Long", req.Var("p", "alphanum,max=8"), "abcdefghi", nil, "max=8"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := tc.fn(nil, tc.raw)

			// Assert
			if tc.rule == "" {
				require.Nil(t, err)
				require.Equal(t, tc.expected, actual)
				return
			}

			require.ErrorIs(t, err, trailhead.ErrNotValid)
			require.Nil(t, actual)
			require.Equal(t, req.ValidationErrors{{In: req.Path, Field: "p", Got: tc.raw, Rule: tc.rule}}, err)
		})
	}
}

func TestParamFuncsWithRouter(t *testing.T) {
	// Arrange
	r, err := router.New()
	require.Nil(t, err)

	var actual any
	r.Param("id", req.Int("id")).Get("/users/{id}", func(c *flow.Context, _ flow.Next) error {
		actual = c.Param("id")
		return nil
	})

	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/7", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 7, actual)

	// Arrange
	w = httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/seven", nil))

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"validationErrors":[{"in":"path","field":"id","got":"seven","rule":"must be int"}]}`, w.Body.String())
}
