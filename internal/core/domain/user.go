package domain

import (
	"errors"
	"time"
)

const (
	RoleHost  = "host"
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already used")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")

// User models a registered account. Role is fixed at registration; there is
// no role-update path anywhere in the API.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Role            string    `json:"role"`
	Bio             string    `json:"bio,omitempty"`
	PricePerSession float64   `json:"price_per_session,omitempty"`
	Languages       []string  `json:"languages,omitempty"`
	Timezone        string    `json:"timezone,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Identity is the authenticated principal asserted by a verified token.
type Identity struct {
	UserID string
	Role   string
}
