package handler

import (
	"github.com/sessionhub/booking-system/internal/core/domain"
)

// --- Domain → HTTP response ---

func toUserSummary(u *domain.User) userSummaryResponse {
	return userSummaryResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		Bio:             u.Bio,
		PricePerSession: u.PricePerSession,
		Languages:       u.Languages,
		Timezone:        u.Timezone,
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		HostID:    b.HostID,
		GuestID:   b.GuestID,
		StartTime: b.StartTime.UTC(),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}
}

func toBookingList(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingResponse(b)
	}
	return out
}
