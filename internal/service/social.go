package service

import (
	"context"

	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	"github.com/rs/zerolog"
)

// SocialService covers roles, follow relationships and admin panel events.
type SocialService struct {
	social   *repository.SocialRepository
	profiles *repository.ProfileRepository
	logger   zerolog.Logger
}

func NewSocialService(
	social *repository.SocialRepository,
	profiles *repository.ProfileRepository,
	logger zerolog.Logger,
) *SocialService {
	return &SocialService{
		social:   social,
		profiles: profiles,
		logger:   logger,
	}
}

// Role resolves the caller's effective role: an explicit assignment wins,
// otherwise profile holders are users and everyone else is a guest.
func (s *SocialService) Role(ctx context.Context, callerID string) (domain.UserRole, error) {
	role, ok, err := s.social.GetRole(ctx, callerID)
	if err != nil {
		return "", err
	}
	if ok {
		return role, nil
	}

	exists, err := s.profiles.Exists(ctx, callerID)
	if err != nil {
		return "", err
	}
	if exists {
		return domain.RoleUser, nil
	}
	return domain.RoleGuest, nil
}

// AssignRole sets a user's role. Only admins may assign roles.
func (s *SocialService) AssignRole(ctx context.Context, callerID, targetID string, role domain.UserRole) error {
	switch role {
	case domain.RoleAdmin, domain.RoleUser, domain.RoleGuest:
	default:
		return domain.ErrInvalidInput
	}

	callerRole, ok, err := s.social.GetRole(ctx, callerID)
	if err != nil {
		return err
	}
	if !ok || callerRole != domain.RoleAdmin {
		return domain.ErrUnauthorized
	}

	if err := s.social.SetRole(ctx, targetID, role); err != nil {
		return err
	}
	s.logger.Info().
		Str("caller_id", callerID).
		Str("target", targetID).
		Str("role", string(role)).
		Msg("role assigned")
	return nil
}

func (s *SocialService) Follow(ctx context.Context, callerID, target string) error {
	if target == "" || target == callerID {
		return domain.ErrInvalidInput
	}
	return s.social.Follow(ctx, callerID, target)
}

func (s *SocialService) Unfollow(ctx context.Context, callerID, target string) error {
	return s.social.Unfollow(ctx, callerID, target)
}

func (s *SocialService) Following(ctx context.Context, callerID string) ([]string, error) {
	return s.social.Following(ctx, callerID)
}

func (s *SocialService) Followers(ctx context.Context, callerID string) ([]string, error) {
	return s.social.Followers(ctx, callerID)
}

func (s *SocialService) Friends(ctx context.Context, callerID string) ([]string, error) {
	return s.social.Friends(ctx, callerID)
}

// CreateEvent records an admin panel event for the caller. Restricted to
// admin-panel holders.
func (s *SocialService) CreateEvent(ctx context.Context, callerID, name, description string, timestamp int64) (*domain.AdminPanelEvent, error) {
	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !profile.HasAdminPanel {
		return nil, domain.ErrUnauthorized
	}

	event := &domain.AdminPanelEvent{
		Creator:     callerID,
		EventName:   name,
		Description: description,
		Timestamp:   timestamp,
	}
	if err := s.social.AddEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *SocialService) EventsFor(ctx context.Context, callerID string) ([]domain.AdminPanelEvent, error) {
	return s.social.EventsFor(ctx, callerID)
}
