package ports

import (
	"context"

	"github.com/sessionhub/booking-system/internal/core/domain"
)

// ProfileService handles the authenticated user's own profile.
type ProfileService interface {
	GetSelf(ctx context.Context, actor domain.Identity) (*domain.User, error)
	UpdateSelf(ctx context.Context, actor domain.Identity, patch ProfilePatch) (*domain.User, error)
}
