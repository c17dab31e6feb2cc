package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/trailhead"
)

// A Source is the part of a request a value is read from.
type Source string

const (
	Body  Source = "body"
	Path  Source = "path"
	Query Source = "query"
)

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	In    Source `json:"in,omitempty"`
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("field=%q rule=%q got=%q", e.Field, e.Rule, fmt.Sprint(e.Got))
	if e.In != "" {
		msg = fmt.Sprintf("in=%q %s", e.In, msg)
	}

	return msg
}

func (ValidationError) Unwrap() error { return trailhead.ErrNotValid }

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

// invalidPathParam reports the raw value captured for the path parameter name breaking rule.
func invalidPathParam(name, raw, rule string) ValidationErrors {
	return ValidationErrors{{In: Path, Field: name, Got: raw, Rule: rule}}
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "\n")
}

// Fields lists the distinct fields with at least one ValidationError, in order.
func (v ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(v))
	for _, err := range v {
		if !seen[err.Field] {
			seen[err.Field] = true
			fields = append(fields, err.Field)
		}
	}

	return fields
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return trailhead.ErrNotValid }
