package bookings

import "errors"

var (
	// ErrInvalidSeed is returned when a seed entry is malformed
	ErrInvalidSeed = errors.New("bookings: invalid seed booking")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("bookings: internal error")
)
