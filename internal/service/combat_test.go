package service

import (
	"context"
	"errors"
	"testing"

	"survival-engine/internal/domain"
)

func TestStartCombatRequiresActiveSurvivor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	enemy := domain.Enemy{Name: "Ghoul", Stats: domain.StatBlock{Health: 50, Attack: 5}}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("start without survivor err = %v, want ErrInvalidState category", err)
	}
}

func TestStartCombatValidatesEnemy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 10})

	for _, enemy := range []domain.Enemy{
		{Name: "", Stats: domain.StatBlock{Health: 10}},
		{Name: "Ghoul", Stats: domain.StatBlock{Health: 0}},
	} {
		if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("enemy %+v err = %v, want ErrInvalidInput", enemy, err)
		}
	}
}

func TestAttackRound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 20, Defense: 5})

	enemy := domain.Enemy{
		Name:  "Ghoul",
		Stats: domain.StatBlock{Health: 40, Attack: 12, Defense: 8},
	}
	session, err := env.combat.StartCombat(ctx, "caller-1", enemy)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.EnemyHealth != 40 || session.PlayerHealth != 100 {
		t.Fatalf("initial health = %d/%d", session.PlayerHealth, session.EnemyHealth)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical)
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	// Player deals 20-8=12, enemy survives and deals 12-5=7.
	if out.EnemyHealth != 28 || out.PlayerHealth != 93 {
		t.Errorf("after round: player=%d enemy=%d, want 93/28", out.PlayerHealth, out.EnemyHealth)
	}
	if out.Result != nil {
		t.Errorf("unresolved round carried a result: %+v", out.Result)
	}
}

func TestAttackDamageFloor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 10, Defense: 30})

	enemy := domain.Enemy{
		Name:  "Shellback",
		Stats: domain.StatBlock{Health: 30, Attack: 10, Defense: 20},
	}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical)
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	// Both rolls are negative before the floor; each side still takes 1.
	if out.EnemyHealth != 29 || out.PlayerHealth != 99 {
		t.Errorf("after round: player=%d enemy=%d, want 99/29", out.PlayerHealth, out.EnemyHealth)
	}
}

func TestMagicAttackUsesMagicStat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 5, Magic: 30})

	enemy := domain.Enemy{
		Name:  "Ward Wraith",
		Stats: domain.StatBlock{Health: 100, Attack: 1, Defense: 5},
	}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackMagic)
	if err != nil {
		t.Fatalf("magic attack: %v", err)
	}
	if out.EnemyHealth != 75 {
		t.Errorf("enemy health = %d, want 75 (30 magic vs 5 defense)", out.EnemyHealth)
	}
}

func TestCombatWinRewards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 20, Defense: 5})

	enemy := domain.Enemy{
		Name:           "Ghoul",
		Stats:          domain.StatBlock{Health: 12, Attack: 10, Defense: 8},
		RewardCurrency: 100,
		RewardExp:      50,
	}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical)
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if out.Result == nil || out.Result.Winner != domain.WinnerPlayer {
		t.Fatalf("result = %+v, want player win", out.Result)
	}
	if out.RewardedCurrency != 100 || out.RewardedExp != 50 {
		t.Errorf("rewards = %d/%d, want 100/50", out.RewardedCurrency, out.RewardedExp)
	}

	p := env.getProfile(t, "caller-1")
	if p.Currency != 100 {
		t.Errorf("currency = %d, want 100", p.Currency)
	}
	s := p.Active()
	if s.Level != 1 || s.Experience != 50 {
		t.Errorf("survivor level=%d exp=%d, want 1/50", s.Level, s.Experience)
	}

	// Session is gone; another attack has nothing to act on.
	if _, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("post-win attack err = %v, want ErrInvalidState category", err)
	}
	status, err := env.combat.Status(ctx, "caller-1", domain.CombatEnemy)
	if err != nil || status != nil {
		t.Errorf("post-win status = %+v, %v; want nil", status, err)
	}
}

func TestCombatWinPetScaledRewards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 20})
	if _, err := env.profile.AddPet(ctx, "caller-1", domain.Pet{Name: "Owl", ExperienceBonus: 25, DropRateBonus: 10}); err != nil {
		t.Fatalf("add pet: %v", err)
	}
	if _, err := env.profile.EquipPet(ctx, "caller-1", "Owl"); err != nil {
		t.Fatalf("equip pet: %v", err)
	}

	enemy := domain.Enemy{
		Name:           "Ghoul",
		Stats:          domain.StatBlock{Health: 5},
		RewardCurrency: 100,
		RewardExp:      50,
	}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical)
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if out.RewardedCurrency != 110 {
		t.Errorf("scaled currency = %d, want 110", out.RewardedCurrency)
	}
	if out.RewardedExp != 62 {
		t.Errorf("scaled exp = %d, want 62 (rounded down)", out.RewardedExp)
	}
}

func TestCombatLossGrantsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 5, Attack: 1})

	enemy := domain.Enemy{
		Name:           "The Warden",
		Stats:          domain.StatBlock{Health: 500, Attack: 100, Defense: 50},
		RewardCurrency: 9999,
		RewardExp:      9999,
	}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical)
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if out.Result == nil || out.Result.Winner != domain.WinnerEnemy {
		t.Fatalf("result = %+v, want enemy win", out.Result)
	}
	if out.PlayerHealth != 0 {
		t.Errorf("player health = %d, want 0", out.PlayerHealth)
	}
	if out.RewardedCurrency != 0 || out.RewardedExp != 0 {
		t.Errorf("loss granted rewards: %d/%d", out.RewardedCurrency, out.RewardedExp)
	}

	p := env.getProfile(t, "caller-1")
	if p.Currency != 0 || p.Active().Experience != 0 {
		t.Error("loss mutated progression")
	}
	status, err := env.combat.Status(ctx, "caller-1", domain.CombatEnemy)
	if err != nil || status != nil {
		t.Errorf("post-loss status = %+v, %v; want nil", status, err)
	}
}

func TestStartWhileOngoing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 10})

	enemy := domain.Enemy{Name: "Ghoul", Stats: domain.StatBlock{Health: 50}}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("second start err = %v, want ErrInvalidState category", err)
	}
	if _, err := env.combat.StartBotCombat(ctx, "caller-1", 1); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("bot start during enemy combat err = %v, want ErrInvalidState category", err)
	}
}

func TestBotCombatDerivedStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 10})

	if _, err := env.combat.StartBotCombat(ctx, "caller-1", 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown bot err = %v, want ErrNotFound", err)
	}

	// Sparring Drone is difficulty 3.
	session, err := env.combat.StartBotCombat(ctx, "caller-1", 2)
	if err != nil {
		t.Fatalf("start bot combat: %v", err)
	}
	if session.EnemyHealth != 300 {
		t.Errorf("bot health = %d, want 300", session.EnemyHealth)
	}
	if session.Enemy.Stats.Attack != 30 || session.Enemy.Stats.Defense != 15 {
		t.Errorf("bot stats = %+v, want attack 30 defense 15", session.Enemy.Stats)
	}
	if session.BotID == nil || *session.BotID != 2 {
		t.Errorf("bot id = %v, want 2", session.BotID)
	}
}

func TestAttackKindMismatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 10})

	enemy := domain.Enemy{Name: "Ghoul", Stats: domain.StatBlock{Health: 50}}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := env.combat.AttackBot(ctx, "caller-1"); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("bot attack on enemy session err = %v, want ErrInvalidState category", err)
	}
	status, err := env.combat.Status(ctx, "caller-1", domain.CombatBot)
	if err != nil || status != nil {
		t.Errorf("bot status during enemy combat = %+v, %v; want nil", status, err)
	}
}

func TestWeaponBonusAppliesInCombat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createFighter(t, "caller-1", domain.StatBlock{Health: 100, Attack: 10})
	if _, err := env.profile.AddWeapon(ctx, "caller-1", domain.Weapon{Name: "Machete", AttackBonus: 15}); err != nil {
		t.Fatalf("add weapon: %v", err)
	}
	if _, err := env.profile.EquipWeapon(ctx, "caller-1", "Machete"); err != nil {
		t.Fatalf("equip weapon: %v", err)
	}

	enemy := domain.Enemy{Name: "Ghoul", Stats: domain.StatBlock{Health: 100, Attack: 1, Defense: 5}}
	if _, err := env.combat.StartCombat(ctx, "caller-1", enemy); err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := env.combat.Attack(ctx, "caller-1", domain.AttackPhysical)
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	// 10 base + 15 weapon against 5 defense.
	if out.EnemyHealth != 80 {
		t.Errorf("enemy health = %d, want 80", out.EnemyHealth)
	}
}
