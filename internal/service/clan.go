package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	"github.com/rs/zerolog"
)

// ClanService owns listings, clan creation and membership. Random selection
// uses a server-owned source so callers cannot predict or steer the join.
type ClanService struct {
	clans  *repository.ClanRepository
	logger zerolog.Logger
}

func NewClanService(clans *repository.ClanRepository, logger zerolog.Logger) *ClanService {
	return &ClanService{
		clans:  clans,
		logger: logger,
	}
}

func (s *ClanService) AddListing(ctx context.Context, callerID, name, description, imageURL string) (*domain.WhyDontYouJoin, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	listing := &domain.WhyDontYouJoin{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		Leader:      callerID,
	}
	if err := s.clans.InsertListing(ctx, listing); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("caller_id", callerID).
		Int64("listing_id", listing.ID).
		Msg("join listing created")
	return listing, nil
}

func (s *ClanService) ActiveListings(ctx context.Context) ([]domain.WhyDontYouJoin, error) {
	return s.clans.ActiveListings(ctx)
}

func (s *ClanService) Marketplace(ctx context.Context) ([]domain.Clan, error) {
	return s.clans.Clans(ctx)
}

// CreateClanFromListing claims someone else's listing and turns it into a
// clan. The caller may supply the clan name; the listing name is the
// fallback. The listing leader becomes founder and sole seed member.
func (s *ClanService) CreateClanFromListing(ctx context.Context, callerID string, listingID int64, clanName string) (*domain.Clan, error) {
	listing, err := s.clans.GetActiveListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Leader == callerID {
		return nil, domain.ErrAlreadyLeader
	}

	name := strings.TrimSpace(clanName)
	if name == "" {
		name = listing.Name
	}

	clan, err := s.clans.CreateClanFromListing(ctx, name, listing)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("caller_id", callerID).
		Int64("listing_id", listingID).
		Int64("clan_id", clan.ID).
		Str("founder", clan.Founder).
		Msg("clan created from listing")
	return clan, nil
}

// Join adds the caller to a clan. Single membership is enforced both here and
// by the unique constraint underneath.
func (s *ClanService) Join(ctx context.Context, callerID string, clanID int64) error {
	if _, member, err := s.clans.MemberOf(ctx, callerID); err != nil {
		return err
	} else if member {
		return domain.ErrAlreadyMember
	}
	if err := s.clans.AddMember(ctx, clanID, callerID); err != nil {
		return err
	}
	s.logger.Info().Str("caller_id", callerID).Int64("clan_id", clanID).Msg("joined clan")
	return nil
}

// JoinRandom picks uniformly among clans the caller is not a member of and
// performs the same join transition.
func (s *ClanService) JoinRandom(ctx context.Context, callerID string) (*domain.Clan, error) {
	clans, err := s.clans.Clans(ctx)
	if err != nil {
		return nil, err
	}
	if len(clans) == 0 {
		return nil, domain.ErrNoClansAvailable
	}

	if _, member, err := s.clans.MemberOf(ctx, callerID); err != nil {
		return nil, err
	} else if member {
		return nil, domain.ErrAlreadyMember
	}

	pick := clans[rand.IntN(len(clans))]
	if err := s.clans.AddMember(ctx, pick.ID, callerID); err != nil {
		return nil, err
	}
	s.logger.Info().Str("caller_id", callerID).Int64("clan_id", pick.ID).Msg("joined random clan")
	return &pick, nil
}
