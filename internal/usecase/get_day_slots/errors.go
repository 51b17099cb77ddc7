package get_day_slots

import "errors"

var (
	// ErrInvalidInput is returned when the request is malformed
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_day_slots: internal error")
)
