package ports

import (
	"context"

	"github.com/sessionhub/booking-system/internal/core/domain"
)

// BookingRepository defines persistence operations for session bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListByParticipant returns every booking where userID is the host or
	// the guest, ordered by ascending start time.
	ListByParticipant(ctx context.Context, userID string) ([]*domain.Booking, error)
	// UpdateStatus sets the booking's status, refreshes updated_at, and
	// returns the updated booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}
