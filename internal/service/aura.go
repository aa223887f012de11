package service

import (
	"context"

	"survival-engine/internal/constants"
	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	"github.com/rs/zerolog"
)

// AuraService runs the incremental prestige loop.
type AuraService struct {
	profiles *repository.ProfileRepository
	locks    *ProfileLocks
	logger   zerolog.Logger
}

func NewAuraService(profiles *repository.ProfileRepository, locks *ProfileLocks, logger zerolog.Logger) *AuraService {
	return &AuraService{
		profiles: profiles,
		locks:    locks,
		logger:   logger,
	}
}

// LevelRequirement is the aura power threshold for leaving the given level:
// level*100, multiplied by rebirthCount^2 once the caller has rebirthed.
func LevelRequirement(level, rebirthCount int64) int64 {
	requirement := level * constants.AuraBaseRequirement
	if rebirthCount > 0 {
		requirement *= rebirthCount * rebirthCount
	}
	return requirement
}

// Click adds the rebirth multiplier to aura power, then applies the level
// loop. Power is cumulative: leveling is a threshold check, not a spend.
func (s *AuraService) Click(ctx context.Context, callerID string) (*domain.Profile, error) {
	unlock := s.locks.Lock(callerID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}

	profile.AuraPower += profile.RebirthMultiplier
	for profile.AuraPower >= LevelRequirement(profile.AuraLevel, profile.RebirthCount) {
		profile.AuraLevel++
	}

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Rebirth performs the one-way prestige reset.
func (s *AuraService) Rebirth(ctx context.Context, callerID string) (*domain.Profile, error) {
	unlock := s.locks.Lock(callerID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if profile.RebirthCount >= constants.MaxRebirthCount {
		return nil, domain.ErrMaxRebirthReached
	}

	profile.RebirthCount++
	profile.RebirthMultiplier = profile.RebirthCount * 2
	profile.AuraPower = 0
	profile.AuraLevel = 1

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("caller_id", callerID).
		Int64("rebirth_count", profile.RebirthCount).
		Int64("multiplier", profile.RebirthMultiplier).
		Msg("rebirth applied")
	return profile, nil
}
