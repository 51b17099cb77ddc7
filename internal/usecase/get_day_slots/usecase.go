package get_day_slots

import (
	"context"
	"fmt"

	"github.com/espacohub/StudioBookingService/internal/domain"
	schedulerSvc "github.com/espacohub/StudioBookingService/internal/service/scheduler"
)

// UseCase expands one calendar day into the bookable slot grid shown in the
// day view, marking every slot free, occupied or unavailable.
type UseCase struct {
	bookingRepo  BookingRepository
	validator    SlotValidator
	hours        Hours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the day-slots usecase.
func NewUseCase(bookingRepo BookingRepository, validator SlotValidator, hours Hours, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the reference clock. Used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute expands the requested day into its slot grid.
// Occupied wins over unavailable: a taken slot renders as taken even on a
// day the tenant could not book anyway.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := domain.StartOfDay(req.Date)

	grid, err := generateGrid(day, uc.hours)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: generate grid: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(grid))
	for i, interval := range grid {
		slot := Slot{Start: interval.Start, End: interval.End}

		switch {
		case overlapsAny(interval, bookings):
			slot.Status = StatusOccupied
		default:
			if err := uc.validator.ValidateSlot(ctx, interval); err != nil {
				reason := schedulerSvc.RejectionReason(err)
				if reason == "" {
					uc.logger.Error("GetDaySlots: validator error for slot %s: %v",
						interval.Start.Format(domain.DateTimeFormat), err)
					return nil, fmt.Errorf("%w: validate slot: %v", ErrInternal, err)
				}
				slot.Status = StatusUnavailable
				slot.Reason = reason
			} else {
				slot.Status = StatusFree
			}
		}

		slots[i] = slot
	}

	uc.logger.Info("GetDaySlots: expanded %d slots for %s", len(slots), day.Format(domain.DateFormat))

	return &Response{Date: day, Slots: slots}, nil
}
