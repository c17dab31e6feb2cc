package req

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/flow"
	"github.com/xy-planning-network/trailhead/http/router"
)

var paramValidator = newValidator()

// Int converts the value captured for the path parameter name to an int.
func Int(name string) router.ParamFunc {
	return func(_ *flow.Context, raw string) (any, error) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, invalidPathParam(name, raw, "must be int")
		}

		return n, nil
	}
}

// UUID converts the value captured for the path parameter name to a uuid.UUID.
func UUID(name string) router.ParamFunc {
	return func(_ *flow.Context, raw string) (any, error) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, invalidPathParam(name, raw, "must be uuid")
		}

		return id, nil
	}
}

// OneOf requires the value captured for the path parameter name be one of vals.
// The value passes through as a string.
func OneOf(name string, vals ...string) router.ParamFunc {
	rule := "oneof=" + strings.Join(vals, " ")
	return func(_ *flow.Context, raw string) (any, error) {
		if !slices.Contains(vals, raw) {
			return nil, invalidPathParam(name, raw, rule)
		}

		return raw, nil
	}
}

// Enum converts the value captured for the path parameter name with parse,
// requiring the result to be a valid trailhead.Enumerable.
func Enum(name string, parse func(string) trailhead.Enumerable) router.ParamFunc {
	return func(_ *flow.Context, raw string) (any, error) {
		e := parse(raw)
		if e == nil || e.Valid() != nil {
			return nil, invalidPathParam(name, raw, "enum")
		}

		return e, nil
	}
}

// Var checks the value captured for the path parameter name against the validation rules in tag,
// e.g., "alphanum,max=32".
// The value passes through as a string.
//
// Var panics if tag holds a rule the validator does not know of.
func Var(name, tag string) router.ParamFunc {
	return func(_ *flow.Context, raw string) (any, error) {
		if err := paramValidator.validatePathParam(name, raw, tag); err != nil {
			return nil, err
		}

		return raw, nil
	}
}
