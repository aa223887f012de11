package service

import (
	"context"
	"errors"
	"testing"

	"survival-engine/internal/domain"
)

func addListing(t *testing.T, env *testEnv, leader, name string) *domain.WhyDontYouJoin {
	t.Helper()
	listing, err := env.clans.AddListing(context.Background(), leader, name, "come fight with us", "")
	if err != nil {
		t.Fatalf("add listing: %v", err)
	}
	return listing
}

func TestAddListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.clans.AddListing(ctx, "leader-1", "  ", "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank name err = %v, want ErrInvalidInput", err)
	}

	listing := addListing(t, env, "leader-1", "Night Shift")
	if listing.ID == 0 || !listing.Active {
		t.Errorf("listing = %+v, want assigned id and active", listing)
	}

	listings, err := env.clans.ActiveListings(ctx)
	if err != nil {
		t.Fatalf("active listings: %v", err)
	}
	if len(listings) != 1 || listings[0].Name != "Night Shift" {
		t.Errorf("listings = %+v", listings)
	}
}

func TestCreateClanFromListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := addListing(t, env, "leader-1", "Night Shift")

	// The leader cannot claim their own listing.
	if _, err := env.clans.CreateClanFromListing(ctx, "leader-1", listing.ID, ""); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("self-claim err = %v, want ErrInvalidState category", err)
	}

	clan, err := env.clans.CreateClanFromListing(ctx, "claimer-1", listing.ID, "")
	if err != nil {
		t.Fatalf("create clan: %v", err)
	}
	if clan.Name != "Night Shift" {
		t.Errorf("clan name = %q, want listing name fallback", clan.Name)
	}
	if clan.Founder != "leader-1" {
		t.Errorf("founder = %q, want listing leader", clan.Founder)
	}
	if clan.MemberCount != 1 || len(clan.Members) != 1 || clan.Members[0] != "leader-1" {
		t.Errorf("seed membership = %+v", clan)
	}

	// The listing is consumed; a second claim has nothing to take.
	if _, err := env.clans.CreateClanFromListing(ctx, "claimer-2", listing.ID, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("double claim err = %v, want ErrNotFound", err)
	}
	listings, err := env.clans.ActiveListings(ctx)
	if err != nil {
		t.Fatalf("active listings: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("consumed listing still active: %+v", listings)
	}
}

func TestCreateClanCustomName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	listing := addListing(t, env, "leader-1", "Night Shift")

	clan, err := env.clans.CreateClanFromListing(ctx, "claimer-1", listing.ID, "Graveyard Crew")
	if err != nil {
		t.Fatalf("create clan: %v", err)
	}
	if clan.Name != "Graveyard Crew" {
		t.Errorf("clan name = %q, want supplied name", clan.Name)
	}
}

func TestJoinSingleMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := addListing(t, env, "leader-1", "Night Shift")
	clanA, err := env.clans.CreateClanFromListing(ctx, "claimer-1", first.ID, "")
	if err != nil {
		t.Fatalf("create clan A: %v", err)
	}
	second := addListing(t, env, "leader-2", "Day Watch")
	clanB, err := env.clans.CreateClanFromListing(ctx, "claimer-2", second.ID, "")
	if err != nil {
		t.Fatalf("create clan B: %v", err)
	}

	// The founder is already seeded as a member.
	if err := env.clans.Join(ctx, "leader-1", clanB.ID); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("founder re-join err = %v, want ErrAlreadyExists category", err)
	}

	if err := env.clans.Join(ctx, "joiner-1", clanA.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := env.clans.Join(ctx, "joiner-1", clanB.ID); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("second join err = %v, want ErrAlreadyExists category", err)
	}

	if err := env.clans.Join(ctx, "joiner-2", 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown clan err = %v, want ErrNotFound", err)
	}

	clans, err := env.clans.Marketplace(ctx)
	if err != nil {
		t.Fatalf("marketplace: %v", err)
	}
	for _, c := range clans {
		if int64(len(c.Members)) != c.MemberCount {
			t.Errorf("clan %d count %d != member set %v", c.ID, c.MemberCount, c.Members)
		}
	}
}

func TestJoinRandom(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.clans.JoinRandom(ctx, "joiner-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("no clans err = %v, want ErrNotFound category", err)
	}

	listing := addListing(t, env, "leader-1", "Night Shift")
	clan, err := env.clans.CreateClanFromListing(ctx, "claimer-1", listing.ID, "")
	if err != nil {
		t.Fatalf("create clan: %v", err)
	}

	picked, err := env.clans.JoinRandom(ctx, "joiner-1")
	if err != nil {
		t.Fatalf("join random: %v", err)
	}
	if picked.ID != clan.ID {
		t.Errorf("picked clan %d, want %d", picked.ID, clan.ID)
	}

	if _, err := env.clans.JoinRandom(ctx, "joiner-1"); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("repeat random join err = %v, want ErrAlreadyExists category", err)
	}
}
