package generator

import "errors"

// Sentinel kinds for generation errors. These allow errors.Is from callers.
var (
	ErrInvalidRequest  = errors.New("invalid generation request")
	ErrInvalidCount    = errors.New("invalid count")
	ErrInvalidAgeRange = errors.New("invalid age range")
)
