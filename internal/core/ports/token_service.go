package ports

import "github.com/sessionhub/booking-system/internal/core/domain"

// TokenService issues and verifies signed identity assertions. Both
// operations are stateless and side-effect free.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	// Verify returns the identity encoded in the token, or
	// domain.ErrInvalidToken when the token is malformed, tampered with,
	// or expired.
	Verify(token string) (domain.Identity, error)
}
