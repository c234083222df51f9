package ports

import (
	"context"

	"github.com/sessionhub/booking-system/internal/core/domain"
)

// ProfilePatch carries the optional fields of a partial profile update.
// Nil pointers mean "leave unchanged". Role and email are deliberately
// absent: both are immutable after registration.
type ProfilePatch struct {
	Name            *string
	Bio             *string
	PricePerSession *float64
	Languages       []string
	Timezone        *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the non-nil fields of patch and returns the
	// updated user.
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
}
