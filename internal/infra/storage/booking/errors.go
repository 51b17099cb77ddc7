package booking

import "errors"

var (
	// ErrSlotConflict is returned when an insert would overlap a stored booking
	ErrSlotConflict = errors.New("booking.repository: slot conflict")

	// ErrInvalidBooking is returned when the booking entity is malformed
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")
)
