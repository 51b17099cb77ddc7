package get_bookings

import (
	"github.com/espacohub/StudioBookingService/internal/domain"
	"github.com/espacohub/StudioBookingService/pkg/ptr"
)

// Calendar colors: placeholders render grey and non-interactive, tenant
// bookings orange.
const (
	colorPlaceholder = "#868686"
	colorBooking     = "#EE7A3C"
)

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// Booking is one calendar event plus its visual treatment.
// Price is absent for operator placeholders: they are not billed.
type Booking struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Price *float64 `json:"price,omitempty"`
	Style Style    `json:"style"`
}

// Style is the visual treatment the calendar applies to the event
type Style struct {
	BackgroundColor string `json:"backgroundColor"`
	Selectable      bool   `json:"selectable"`
}

// FromDomainBookings converts the booking set into the HTTP response
func FromDomainBookings(bookings []*domain.Booking) *BookingsResponse {
	result := make([]Booking, len(bookings))
	for i, b := range bookings {
		style := Style{BackgroundColor: colorBooking, Selectable: true}
		var price *float64
		if b.IsPlaceholder() {
			style = Style{BackgroundColor: colorPlaceholder, Selectable: false}
		} else {
			price = ptr.Ptr(b.Price)
		}
		result[i] = Booking{
			ID:    b.ID,
			Title: b.Title,
			Start: b.Interval.Start.Format(domain.DateTimeFormat),
			End:   b.Interval.End.Format(domain.DateTimeFormat),
			Price: price,
			Style: style,
		}
	}
	return &BookingsResponse{Bookings: result}
}
