package service

import (
	"context"

	"survival-engine/internal/catalog"
	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	"github.com/rs/zerolog"
)

// DungeonService owns quest and crate progression. Completion and unlocks are
// idempotent per caller: a repeat is a no-op success, never a double credit.
type DungeonService struct {
	profiles *repository.ProfileRepository
	catalog  *catalog.Catalog
	locks    *ProfileLocks
	logger   zerolog.Logger
}

func NewDungeonService(
	profiles *repository.ProfileRepository,
	cat *catalog.Catalog,
	locks *ProfileLocks,
	logger zerolog.Logger,
) *DungeonService {
	return &DungeonService{
		profiles: profiles,
		catalog:  cat,
		locks:    locks,
		logger:   logger,
	}
}

func (s *DungeonService) Dungeons() []domain.Dungeon {
	return s.catalog.Dungeons()
}

// StartQuest records the quest as started and points the profile at its
// dungeon. Starting is advisory: completion is not gated on it.
func (s *DungeonService) StartQuest(ctx context.Context, callerID string, questID int64) (*domain.Profile, error) {
	_, dungeonID, ok := s.catalog.FindQuest(questID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	unlock := s.locks.Lock(callerID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !domain.ContainsID(profile.StartedQuests, questID) {
		profile.StartedQuests = append(profile.StartedQuests, questID)
	}
	profile.ActiveDungeonID = &dungeonID
	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CompleteQuest credits the reward exactly once per caller and grants the
// quest's key when it names one.
func (s *DungeonService) CompleteQuest(ctx context.Context, callerID string, questID int64) (*domain.Profile, error) {
	quest, _, ok := s.catalog.FindQuest(questID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	unlock := s.locks.Lock(callerID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if domain.ContainsID(profile.CompletedQuests, questID) {
		return profile, nil
	}

	profile.CompletedQuests = append(profile.CompletedQuests, questID)
	if err := profile.CreditCurrency(quest.RewardCurrency); err != nil {
		return nil, err
	}
	if quest.RewardKey != nil && !domain.ContainsKey(profile.CollectedKeys, *quest.RewardKey) {
		profile.CollectedKeys = append(profile.CollectedKeys, *quest.RewardKey)
	}

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("caller_id", callerID).
		Int64("quest_id", questID).
		Int64("reward", quest.RewardCurrency).
		Msg("quest completed")
	return profile, nil
}

// UnlockCrate requires the crate's key and credits its reward exactly once.
func (s *DungeonService) UnlockCrate(ctx context.Context, callerID string, crateID int64) (*domain.Profile, error) {
	crate, _, ok := s.catalog.FindCrate(crateID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	unlock := s.locks.Lock(callerID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if domain.ContainsID(profile.OpenedCrates, crateID) {
		return profile, nil
	}
	if !domain.ContainsKey(profile.CollectedKeys, crate.RequiredKey) {
		return nil, domain.ErrKeyRequired
	}

	profile.OpenedCrates = append(profile.OpenedCrates, crateID)
	if err := profile.CreditCurrency(crate.Reward); err != nil {
		return nil, err
	}

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("caller_id", callerID).
		Int64("crate_id", crateID).
		Int64("reward", crate.Reward).
		Msg("crate unlocked")
	return profile, nil
}
