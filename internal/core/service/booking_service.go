package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionhub/booking-system/internal/api/metrics"
	"github.com/sessionhub/booking-system/internal/core/domain"
	"github.com/sessionhub/booking-system/internal/core/ports"
)

// DuplicateGuard abstracts the Redis-backed duplicate-booking check. A guard
// hit means an identical (guest, host, start time) booking was created
// recently.
type DuplicateGuard interface {
	IsDuplicate(ctx context.Context, guestID, hostID string, startTime time.Time) (bool, error)
	Mark(ctx context.Context, guestID, hostID string, startTime time.Time) error
}

// BookingService enforces who may act on a booking and which status
// transitions are legal.
type BookingService struct {
	bookings ports.BookingRepository
	users    ports.UserRepository
	guard    DuplicateGuard
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	users ports.UserRepository,
	guard DuplicateGuard,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{bookings: bookings, users: users, guard: guard, logger: logger}
}

// CreateBooking creates a pending booking from the actor (guest) against the
// given host. Only guest-role actors may book, self-booking is rejected, and
// the host reference must resolve to a user whose role is host.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.Actor.Role != domain.RoleGuest {
		return nil, domain.ErrForbidden
	}
	if input.HostID == input.Actor.UserID {
		return nil, domain.ErrSelfBooking
	}

	host, err := s.users.FindByID(ctx, input.HostID)
	if err != nil || host.Role != domain.RoleHost {
		return nil, domain.ErrHostNotFound
	}

	// Guard check is best-effort: a Redis failure is logged and the create
	// proceeds, the store stays authoritative.
	isDup, err := s.guard.IsDuplicate(ctx, input.Actor.UserID, input.HostID, input.StartTime)
	if err != nil {
		s.logger.Warn().Err(err).Str("host_id", input.HostID).Msg("duplicate guard check failed, creating anyway")
	} else if isDup {
		return nil, domain.ErrDuplicateBooking
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		HostID:    input.HostID,
		GuestID:   input.Actor.UserID,
		StartTime: input.StartTime.UTC(),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("host_id", input.HostID).Msg("failed to create booking")
		return nil, err
	}

	if markErr := s.guard.Mark(ctx, input.Actor.UserID, input.HostID, input.StartTime); markErr != nil {
		s.logger.Warn().Err(markErr).Str("booking_id", created.ID).Msg("failed to set duplicate guard key")
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().
		Str("booking_id", created.ID).
		Str("host_id", created.HostID).
		Str("guest_id", created.GuestID).
		Msg("booking created")

	return created, nil
}

// ListMyBookings returns every booking where the actor is host or guest,
// ascending by start time.
func (s *BookingService) ListMyBookings(ctx context.Context, actor domain.Identity) ([]*domain.Booking, error) {
	bookings, err := s.bookings.ListByParticipant(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus transitions a booking's status. Only the booking's host may
// invoke it; guest and admin are both excluded. The target must be reachable
// from the current status in the transition table.
func (s *BookingService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Booking, error) {
	if !input.Status.IsSettable() {
		return nil, fmt.Errorf("%w: %q is not a settable status", domain.ErrInvalidTransition, input.Status)
	}

	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.HostID != input.Actor.UserID {
		return nil, domain.ErrForbidden
	}

	if !booking.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, input.Status)
	}

	updated, err := s.bookings.UpdateStatus(ctx, input.BookingID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(input.Status)).Inc()
	s.logger.Info().
		Str("booking_id", updated.ID).
		Str("status", string(updated.Status)).
		Msg("booking status updated")

	return updated, nil
}
