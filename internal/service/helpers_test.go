package service

import (
	"context"
	"database/sql"
	"testing"

	"survival-engine/internal/catalog"
	"survival-engine/internal/database"
	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// testEnv wires the full service layer over an in-memory database with the
// real migrations applied.
type testEnv struct {
	profiles *repository.ProfileRepository
	clanRepo *repository.ClanRepository
	social   *repository.SocialRepository
	catalog  *catalog.Catalog

	profile  *ProfileService
	combat   *CombatService
	aura     *AuraService
	dungeon  *DungeonService
	clans    *ClanService
	accounts *SocialService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// A second pooled connection would see a different empty :memory: db.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	log := zerolog.Nop()
	if err := database.RunMigrations(db, log); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	profiles := repository.NewProfileRepository(db, log)
	sessions := repository.NewCombatRepository(db, log)
	clanRepo := repository.NewClanRepository(db, log)
	socialRepo := repository.NewSocialRepository(db, log)
	cat := catalog.New(log)
	locks := NewProfileLocks()

	return &testEnv{
		profiles: profiles,
		clanRepo: clanRepo,
		social:   socialRepo,
		catalog:  cat,
		profile:  NewProfileService(profiles, socialRepo, cat, locks, log),
		combat:   NewCombatService(profiles, sessions, cat, locks, log),
		aura:     NewAuraService(profiles, locks, log),
		dungeon:  NewDungeonService(profiles, cat, locks, log),
		clans:    NewClanService(clanRepo, log),
		accounts: NewSocialService(socialRepo, profiles, log),
	}
}

func (e *testEnv) createProfile(t *testing.T, callerID string) *domain.Profile {
	t.Helper()
	p, err := e.profile.CreateProfile(context.Background(), callerID)
	if err != nil {
		t.Fatalf("create profile %q: %v", callerID, err)
	}
	return p
}

// createFighter creates a profile with one survivor carrying the given stats.
func (e *testEnv) createFighter(t *testing.T, callerID string, stats domain.StatBlock) {
	t.Helper()
	e.createProfile(t, callerID)
	if _, err := e.profile.CreateSurvivor(context.Background(), callerID, "Ash", stats); err != nil {
		t.Fatalf("create survivor for %q: %v", callerID, err)
	}
}

func (e *testEnv) fund(t *testing.T, callerID string, amount int64) {
	t.Helper()
	if _, err := e.profile.EarnCurrency(context.Background(), callerID, amount); err != nil {
		t.Fatalf("fund %q: %v", callerID, err)
	}
}

func (e *testEnv) getProfile(t *testing.T, callerID string) *domain.Profile {
	t.Helper()
	p, err := e.profiles.Get(context.Background(), callerID)
	if err != nil {
		t.Fatalf("load profile %q: %v", callerID, err)
	}
	return p
}

func (e *testEnv) putProfile(t *testing.T, p *domain.Profile) {
	t.Helper()
	if err := e.profiles.Put(context.Background(), p); err != nil {
		t.Fatalf("store profile %q: %v", p.CallerID, err)
	}
}
