package handler

import "time"

type createBookingRequest struct {
	HostID    string `json:"host_id"    validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type bookingResponse struct {
	ID        string    `json:"id"`
	HostID    string    `json:"host_id"`
	GuestID   string    `json:"guest_id"`
	StartTime time.Time `json:"start_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type bookingEnvelope struct {
	Booking bookingResponse `json:"booking"`
}

type bookingListEnvelope struct {
	Bookings []bookingResponse `json:"bookings"`
}
