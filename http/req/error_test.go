package req_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/req"
)

func TestValidationErrorsError(t *testing.T) {
	// Arrange
	var v req.ValidationErrors

	// Act
	actual := v.Error()

	// Assert
	require.Zero(t, actual)

	// Arrange
	v = append(
		v,
		req.ValidationError{
			Field: "first",
			Rule:  "required; string",
		},
		req.ValidationError{
			Field: "second",
			Got:   "big boo boo",
			Rule:  "len=1; string",
		},
	)

	expected := strings.Join([]string{
		`field="first" rule="required; string" got="<nil>"`,
		`field="second" rule="len=1; string" got="big boo boo"`,
	}, "\n")

	// Act
	actual = v.Error()

	// Assert
	require.Equal(t, expected, actual)
}

func TestValidationErrorsMarshalJSON(t *testing.T) {
	// Arrange
	var v req.ValidationErrors

	// Act
	actual, err := json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "{}", string(actual))

	// Arrange
	v = append(v, req.ValidationError{
		Field: "first",
		Rule:  "required; string",
		Got:   "",
	})

	expected := `{"validationErrors":[{"field":"first","got":"","rule":"required; string"}]}`

	// Act
	actual, err = json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, expected, string(actual))
}

func TestValidationErrorsUnwrap(t *testing.T) {
	require.ErrorIs(t, req.ValidationErrors{}, trailhead.ErrNotValid)
}

func TestValidationErrorError(t *testing.T) {
	tcs := []struct {
		name     string
		err      req.ValidationError
		expected string
	}{
		{"No-Source", req.ValidationError{Field: "a", Got: 1, Rule: "gt=1; int"}, `field="a" rule="gt=1; int" got="1"`},
		{"Path", req.ValidationError{In: req.Path, Field: "id", Got: "seven", Rule: "must be int"}, `in="path" field="id" rule="must be int" got="seven"`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.err.Error())
			require.ErrorIs(t, tc.err, trailhead.ErrNotValid)
		})
	}
}

func TestValidationErrorsFields(t *testing.T) {
	// Arrange
	v := req.ValidationErrors{
		{In: req.Path, Field: "id", Rule: "alphanum"},
		{In: req.Query, Field: "sort", Rule: "oneof=asc desc"},
		{In: req.Path, Field: "id", Rule: "max=8"},
	}

	// Act
	actual := v.Fields()

	// Assert
	require.Equal(t, []string{"id", "sort"}, actual)
	require.Nil(t, req.ValidationErrors{}.Fields())
}

func TestValidationErrorsMarshalJSONSource(t *testing.T) {
	// Arrange
	v := req.ValidationErrors{{In: req.Path, Field: "id", Got: "x", Rule: "must be int"}}

	// Act
	actual, err := json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"validationErrors":[{"in":"path","field":"id","got":"x","rule":"must be int"}]}`, string(actual))
}
