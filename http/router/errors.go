package router

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

var (
	ErrBadPattern       = errors.New("bad path pattern")
	ErrDuplicateName    = errors.New("duplicate route name")
	ErrDuplicateRoute   = errors.New("duplicate route")
	ErrFrozen           = errors.New("router frozen")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrUnknownRoute     = errors.New("unknown route name")
)

// errNotFound marks a path no route is registered under.
// It never leaves the package: dispatch turns it into calling next.
var errNotFound = errors.New("not found")

// A MethodNotAllowedError reports a request for a known path
// with a method no route at that path handles.
type MethodNotAllowedError struct {
	Method  string
	Path    string
	allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrMethodNotAllowed, e.Method, e.Path)
}

// Allowed lists, sorted, the methods routes at the path handle.
func (e *MethodNotAllowedError) Allowed() []string {
	return append([]string(nil), e.allowed...)
}

// StatusCode is http.StatusMethodNotAllowed.
func (e *MethodNotAllowedError) StatusCode() int { return http.StatusMethodNotAllowed }

func (e *MethodNotAllowedError) Unwrap() error { return ErrMethodNotAllowed }

// merge adds the methods other allows to those e allows.
func (e *MethodNotAllowedError) merge(other *MethodNotAllowedError) {
	for _, m := range other.allowed {
		if !slices.Contains(e.allowed, m) {
			e.allowed = append(e.allowed, m)
		}
	}
	slices.Sort(e.allowed)
}

// duplicateNameError formats as `Duplicate route name "name"`.
type duplicateNameError string

func (e duplicateNameError) Error() string { return fmt.Sprintf("Duplicate route name %q", string(e)) }

func (duplicateNameError) Unwrap() error { return ErrDuplicateName }

// unknownRouteError formats as `Unknown route name "name"`.
type unknownRouteError string

func (e unknownRouteError) Error() string { return fmt.Sprintf("Unknown route name %q", string(e)) }

func (unknownRouteError) Unwrap() error { return ErrUnknownRoute }

// duplicateRouteError formats as `Duplicate route "GET /path"`.
type duplicateRouteError struct{ method, path string }

func (e duplicateRouteError) Error() string {
	return fmt.Sprintf("Duplicate route %q", strings.TrimSpace(e.method+" "+e.path))
}

func (duplicateRouteError) Unwrap() error { return ErrDuplicateRoute }
