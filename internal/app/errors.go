package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrCountTooLarge = errors.New("count exceeds configured maximum")
)
