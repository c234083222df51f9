package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a session booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// completed and cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrHostNotFound = errors.New("host not found")
var ErrForbidden = errors.New("access forbidden")
var ErrSelfBooking = errors.New("cannot book yourself")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrDuplicateBooking = errors.New("booking already exists")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsSettable reports whether the status is a legal target for a status
// update. pending is the initial state only and can never be re-entered.
func (s BookingStatus) IsSettable() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking links one guest and one host at a start time. Host and guest are
// non-owning references by user id; no referential integrity is enforced
// beyond the existence check at creation.
type Booking struct {
	ID        string        `json:"id"`
	HostID    string        `json:"host_id"`
	GuestID   string        `json:"guest_id"`
	StartTime time.Time     `json:"start_time"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
