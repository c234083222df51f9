package ports

import (
	"context"

	"github.com/sessionhub/booking-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account. Role must
// be host or guest; admin accounts cannot be self-assigned.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration and login. Both return a signed token
// alongside the user so clients can authenticate immediately.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
