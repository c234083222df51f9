package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sessionhub/booking-system/internal/core/domain"
	"github.com/sessionhub/booking-system/internal/core/ports"
)

// ProfileService handles the authenticated user's own profile. Field
// validation happens at the transport layer; this service applies the
// partial merge. Role and email never change here.
type ProfileService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) GetSelf(ctx context.Context, actor domain.Identity) (*domain.User, error) {
	return s.repo.FindByID(ctx, actor.UserID)
}

func (s *ProfileService) UpdateSelf(ctx context.Context, actor domain.Identity, patch ports.ProfilePatch) (*domain.User, error) {
	updated, err := s.repo.UpdateProfile(ctx, actor.UserID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", actor.UserID).Msg("profile updated")
	return updated, nil
}
