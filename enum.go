package trailhead

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Path parameters constrained to an Enumerable are checked with Valid before reaching a handler.
type Enumerable interface {
	String() string
	Valid() error
}
