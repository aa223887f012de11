package service

import (
	"context"
	"errors"
	"testing"

	"survival-engine/internal/constants"
	"survival-engine/internal/domain"
)

func clickTimes(t *testing.T, env *testEnv, callerID string, n int) *domain.Profile {
	t.Helper()
	var p *domain.Profile
	var err error
	for i := 0; i < n; i++ {
		p, err = env.aura.Click(context.Background(), callerID)
		if err != nil {
			t.Fatalf("click %d: %v", i+1, err)
		}
	}
	return p
}

func TestLevelRequirement(t *testing.T) {
	tests := []struct {
		level   int64
		rebirth int64
		want    int64
	}{
		{level: 1, rebirth: 0, want: 100},
		{level: 5, rebirth: 0, want: 500},
		{level: 1, rebirth: 1, want: 100},
		{level: 1, rebirth: 2, want: 400},
		{level: 3, rebirth: 3, want: 2700},
	}
	for _, tt := range tests {
		if got := LevelRequirement(tt.level, tt.rebirth); got != tt.want {
			t.Errorf("LevelRequirement(%d, %d) = %d, want %d", tt.level, tt.rebirth, got, tt.want)
		}
	}
}

func TestClickAccumulatesAndLevels(t *testing.T) {
	env := newTestEnv(t)
	env.createProfile(t, "caller-1")

	p := clickTimes(t, env, "caller-1", 96)
	if p.AuraPower != 96 || p.AuraLevel != 1 {
		t.Fatalf("after 96 clicks: power=%d level=%d, want 96/1", p.AuraPower, p.AuraLevel)
	}

	p = clickTimes(t, env, "caller-1", 4)
	if p.AuraPower != 100 || p.AuraLevel != 2 {
		t.Fatalf("at threshold: power=%d level=%d, want 100/2", p.AuraPower, p.AuraLevel)
	}

	// Power is cumulative; the next threshold is level 2's 200 total.
	p = clickTimes(t, env, "caller-1", 99)
	if p.AuraPower != 199 || p.AuraLevel != 2 {
		t.Fatalf("before next threshold: power=%d level=%d, want 199/2", p.AuraPower, p.AuraLevel)
	}
	p = clickTimes(t, env, "caller-1", 1)
	if p.AuraPower != 200 || p.AuraLevel != 3 {
		t.Fatalf("at next threshold: power=%d level=%d, want 200/3", p.AuraPower, p.AuraLevel)
	}
}

func TestRebirthResetsAndScales(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	clickTimes(t, env, "caller-1", 150)
	p, err := env.aura.Rebirth(ctx, "caller-1")
	if err != nil {
		t.Fatalf("rebirth: %v", err)
	}
	if p.RebirthCount != 1 || p.RebirthMultiplier != 2 {
		t.Fatalf("after rebirth: count=%d multiplier=%d, want 1/2", p.RebirthCount, p.RebirthMultiplier)
	}
	if p.AuraPower != 0 || p.AuraLevel != 1 {
		t.Fatalf("rebirth did not reset: power=%d level=%d", p.AuraPower, p.AuraLevel)
	}

	// Each click now grants 2 power.
	p = clickTimes(t, env, "caller-1", 3)
	if p.AuraPower != 6 {
		t.Errorf("power after 3 clicks = %d, want 6", p.AuraPower)
	}

	p, err = env.aura.Rebirth(ctx, "caller-1")
	if err != nil {
		t.Fatalf("second rebirth: %v", err)
	}
	if p.RebirthCount != 2 || p.RebirthMultiplier != 4 {
		t.Fatalf("after second rebirth: count=%d multiplier=%d, want 2/4", p.RebirthCount, p.RebirthMultiplier)
	}

	// Requirement scales with rebirthCount squared: level 1 now needs 400.
	p = clickTimes(t, env, "caller-1", 99)
	if p.AuraPower != 396 || p.AuraLevel != 1 {
		t.Fatalf("below scaled threshold: power=%d level=%d, want 396/1", p.AuraPower, p.AuraLevel)
	}
	p = clickTimes(t, env, "caller-1", 1)
	if p.AuraPower != 400 || p.AuraLevel != 2 {
		t.Fatalf("at scaled threshold: power=%d level=%d, want 400/2", p.AuraPower, p.AuraLevel)
	}
}

func TestRebirthCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProfile(t, "caller-1")

	p := env.getProfile(t, "caller-1")
	p.RebirthCount = constants.MaxRebirthCount
	env.putProfile(t, p)

	if _, err := env.aura.Rebirth(ctx, "caller-1"); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("capped rebirth err = %v, want ErrInvalidState category", err)
	}
}

func TestAuraRequiresProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.aura.Click(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("click without profile err = %v, want ErrNotFound category", err)
	}
	if _, err := env.aura.Rebirth(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("rebirth without profile err = %v, want ErrNotFound category", err)
	}
}
