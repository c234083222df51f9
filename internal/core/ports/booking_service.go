package ports

import (
	"context"
	"time"

	"github.com/sessionhub/booking-system/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking. Actor is
// the authenticated identity making the request.
type CreateBookingInput struct {
	Actor     domain.Identity
	HostID    string
	StartTime time.Time
}

// UpdateStatusInput carries the parameters of a status transition request.
type UpdateStatusInput struct {
	Actor     domain.Identity
	BookingID string
	Status    domain.BookingStatus
}

// BookingService defines use-case operations for session bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// ListMyBookings returns every booking where the actor is host or
	// guest, ascending by start time. The full set is returned each call;
	// pagination is out of scope.
	ListMyBookings(ctx context.Context, actor domain.Identity) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Booking, error)
}
