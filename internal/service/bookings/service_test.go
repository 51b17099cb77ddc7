package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacohub/StudioBookingService/internal/domain"
	storage "github.com/espacohub/StudioBookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedInterval(day, startHour, endHour int) domain.Interval {
	return domain.Interval{
		Start: time.Date(2024, time.June, day, startHour, 0, 0, 0, time.Local),
		End:   time.Date(2024, time.June, day, endHour, 0, 0, 0, time.Local),
	}
}

func TestLoadSeeds(t *testing.T) {
	repo := storage.NewRepository()
	svc := NewService(repo, nopLogger{})

	err := svc.LoadSeeds(context.Background(), []Seed{
		{Title: "Reservado", Interval: seedInterval(12, 10, 12)},
		{Interval: seedInterval(13, 14, 16)}, // empty title falls back to the placeholder
	})
	require.NoError(t, err)

	bookings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	for _, b := range bookings {
		assert.Equal(t, domain.PlaceholderTitle, b.Title)
		assert.True(t, b.IsPlaceholder())
		assert.Zero(t, b.Price, "placeholders are not billed")
	}
}

func TestLoadSeeds_InvalidInterval(t *testing.T) {
	repo := storage.NewRepository()
	svc := NewService(repo, nopLogger{})

	err := svc.LoadSeeds(context.Background(), []Seed{
		{Title: "Reservado", Interval: domain.Interval{
			Start: time.Date(2024, time.June, 12, 12, 0, 0, 0, time.Local),
			End:   time.Date(2024, time.June, 12, 10, 0, 0, 0, time.Local),
		}},
	})
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestLoadSeeds_OverlapIsRejected(t *testing.T) {
	repo := storage.NewRepository()
	svc := NewService(repo, nopLogger{})

	err := svc.LoadSeeds(context.Background(), []Seed{
		{Title: "Reservado", Interval: seedInterval(12, 10, 12)},
		{Title: "Reservado", Interval: seedInterval(12, 11, 13)},
	})
	assert.ErrorIs(t, err, ErrInvalidSeed)
}
