package service

import (
	"context"
	"errors"
	"testing"

	"survival-engine/internal/domain"
)

func TestStartQuest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	if _, err := env.dungeon.StartQuest(ctx, "caller-1", 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown quest err = %v, want ErrNotFound", err)
	}

	p, err := env.dungeon.StartQuest(ctx, "caller-1", 103)
	if err != nil {
		t.Fatalf("start quest: %v", err)
	}
	if !domain.ContainsID(p.StartedQuests, 103) {
		t.Error("quest not recorded as started")
	}
	if p.ActiveDungeonID == nil || *p.ActiveDungeonID != 2 {
		t.Errorf("active dungeon = %v, want 2", p.ActiveDungeonID)
	}

	// Restarting is harmless and retargets the active dungeon.
	p, err = env.dungeon.StartQuest(ctx, "caller-1", 101)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if len(p.StartedQuests) != 2 {
		t.Errorf("started quests = %v", p.StartedQuests)
	}
	if *p.ActiveDungeonID != 1 {
		t.Errorf("active dungeon = %d, want 1", *p.ActiveDungeonID)
	}
}

func TestCompleteQuestIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	p, err := env.dungeon.CompleteQuest(ctx, "caller-1", 101)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if p.Currency != 50 {
		t.Fatalf("currency = %d, want 50", p.Currency)
	}
	if !domain.ContainsID(p.CompletedQuests, 101) {
		t.Fatal("quest not recorded as completed")
	}

	p, err = env.dungeon.CompleteQuest(ctx, "caller-1", 101)
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if p.Currency != 50 {
		t.Errorf("repeat completion credited again: currency = %d", p.Currency)
	}

	if _, err := env.dungeon.CompleteQuest(ctx, "caller-1", 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown quest err = %v, want ErrNotFound", err)
	}
}

func TestCompleteQuestGrantsKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	p, err := env.dungeon.CompleteQuest(ctx, "caller-1", 102)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if p.Currency != 120 {
		t.Errorf("currency = %d, want 120", p.Currency)
	}
	if !domain.ContainsKey(p.CollectedKeys, "rusty key") {
		t.Errorf("keys = %v, want rusty key", p.CollectedKeys)
	}
}

func TestUnlockCrateRequiresKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	if _, err := env.dungeon.UnlockCrate(ctx, "caller-1", 201); !errors.Is(err, domain.ErrInsufficientResource) {
		t.Fatalf("keyless unlock err = %v, want ErrInsufficientResource category", err)
	}
	if env.getProfile(t, "caller-1").Currency != 0 {
		t.Error("failed unlock credited currency")
	}

	if _, err := env.dungeon.UnlockCrate(ctx, "caller-1", 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown crate err = %v, want ErrNotFound", err)
	}
}

func TestUnlockCrateIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	if _, err := env.dungeon.CompleteQuest(ctx, "caller-1", 102); err != nil {
		t.Fatalf("earn key: %v", err)
	}

	p, err := env.dungeon.UnlockCrate(ctx, "caller-1", 201)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if p.Currency != 420 { // 120 quest + 300 crate
		t.Fatalf("currency = %d, want 420", p.Currency)
	}
	if !domain.ContainsID(p.OpenedCrates, 201) {
		t.Fatal("crate not recorded as opened")
	}

	p, err = env.dungeon.UnlockCrate(ctx, "caller-1", 201)
	if err != nil {
		t.Fatalf("repeat unlock: %v", err)
	}
	if p.Currency != 420 {
		t.Errorf("repeat unlock credited again: currency = %d", p.Currency)
	}
}

func TestKeyOpensEveryMatchingCrate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	// The warden's key guards crates in two different dungeons.
	if _, err := env.dungeon.CompleteQuest(ctx, "caller-1", 105); err != nil {
		t.Fatalf("earn key: %v", err)
	}
	if _, err := env.dungeon.UnlockCrate(ctx, "caller-1", 203); err != nil {
		t.Fatalf("unlock first crate: %v", err)
	}
	p, err := env.dungeon.UnlockCrate(ctx, "caller-1", 204)
	if err != nil {
		t.Fatalf("unlock second crate: %v", err)
	}
	if p.Currency != 800+1500+5000 {
		t.Errorf("currency = %d, want %d", p.Currency, 800+1500+5000)
	}
}

func TestDungeonsCatalog(t *testing.T) {
	env := newTestEnv(t)

	dungeons := env.dungeon.Dungeons()
	if len(dungeons) != 3 {
		t.Fatalf("dungeons = %d, want 3", len(dungeons))
	}
	quests := 0
	for _, d := range dungeons {
		quests += len(d.AvailableQuests)
	}
	if quests != 5 {
		t.Errorf("total quests = %d, want 5", quests)
	}
}
