package flow

import "errors"

var (
	ErrNextCalledTwice = errors.New("next called multiple times")
)
