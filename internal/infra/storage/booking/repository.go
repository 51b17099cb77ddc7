package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// Repository is the in-memory booking store for the studio.
// State is session-scoped: it lives for the process lifetime and is never
// persisted. Bookings are append-only; there is no delete.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

// NewRepository creates an empty booking repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Create inserts a booking and returns the stored copy.
// The overlap invariant is enforced here as well as in the scheduler: two
// commits racing between validation and insert are serialized by the lock,
// and the loser gets ErrSlotConflict.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b == nil || !b.Interval.IsValid() {
		return nil, fmt.Errorf("%w: Create - interval must satisfy start < end", ErrInvalidBooking)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.Interval.Overlaps(b.Interval) {
			return nil, fmt.Errorf("%w: Create - interval overlaps booking id=%s", ErrSlotConflict, existing.ID)
		}
	}

	stored := *b
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.bookings = append(r.bookings, &stored)

	result := stored
	return &result, nil
}

// List returns a snapshot of all bookings. Callers get copies; the stored
// entities stay immutable.
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		copied := *b
		result[i] = &copied
	}
	return result, nil
}

// Count returns the number of stored bookings.
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings), nil
}
