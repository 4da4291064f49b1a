package wheel

import "errors"

var (
	// ErrNegativeBound is returned when a range bound is below zero.
	ErrNegativeBound = errors.New("wheel: range bound must be >= 0")
	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("wheel: min must not exceed max")
)
