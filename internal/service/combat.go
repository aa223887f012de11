package service

import (
	"context"
	"strings"

	"survival-engine/internal/catalog"
	"survival-engine/internal/constants"
	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	"github.com/rs/zerolog"
)

// CombatOutcome is what an attack call returns: the server-owned health
// values plus, on the resolving call, the result and granted rewards.
type CombatOutcome struct {
	PlayerHealth     int64                `json:"playerHealth"`
	EnemyHealth      int64                `json:"enemyHealth"`
	Result           *domain.CombatResult `json:"result,omitempty"`
	RewardedCurrency int64                `json:"rewardedCurrency"`
	RewardedExp      int64                `json:"rewardedExp"`
}

// CombatService owns the single active session per caller, for both
// client-chosen enemies and server-resolved bots.
type CombatService struct {
	profiles *repository.ProfileRepository
	sessions *repository.CombatRepository
	catalog  *catalog.Catalog
	locks    *ProfileLocks
	logger   zerolog.Logger
}

func NewCombatService(
	profiles *repository.ProfileRepository,
	sessions *repository.CombatRepository,
	cat *catalog.Catalog,
	locks *ProfileLocks,
	logger zerolog.Logger,
) *CombatService {
	return &CombatService{
		profiles: profiles,
		sessions: sessions,
		catalog:  cat,
		locks:    locks,
		logger:   logger,
	}
}

// StartCombat opens a session against a client-chosen enemy definition. The
// enemy snapshot is taken here; attack calls never accept enemy state again.
func (s *CombatService) StartCombat(ctx context.Context, callerID string, enemy domain.Enemy) (*domain.CombatSession, error) {
	if strings.TrimSpace(enemy.Name) == "" || enemy.Stats.Health < 1 {
		return nil, domain.ErrInvalidInput
	}
	return s.start(ctx, callerID, domain.CombatEnemy, enemy, nil)
}

// StartBotCombat opens a session against a catalog bot. The bot's combat
// stats derive from its difficulty, never from client input.
func (s *CombatService) StartBotCombat(ctx context.Context, callerID string, botID int64) (*domain.CombatSession, error) {
	bot, ok := s.catalog.Bot(botID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	enemy := domain.Enemy{
		Name: bot.Name,
		Stats: domain.StatBlock{
			Health:  bot.Difficulty * constants.BotHealthPerDifficulty,
			Attack:  bot.Difficulty * constants.BotAttackPerDifficulty,
			Defense: bot.Difficulty * constants.BotDefensePerDifficulty,
			Level:   bot.Difficulty,
		},
		RewardCurrency: bot.RewardCurrency,
		RewardExp:      bot.RewardExp,
	}
	return s.start(ctx, callerID, domain.CombatBot, enemy, &bot.ID)
}

func (s *CombatService) start(ctx context.Context, callerID string, kind domain.CombatKind, enemy domain.Enemy, botID *int64) (*domain.CombatSession, error) {
	unlock := s.locks.Lock(callerID)
	defer unlock()

	existing, err := s.sessions.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Ongoing {
		return nil, domain.ErrAlreadyInCombat
	}

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	playerStats, err := profile.ActiveEffectiveStats()
	if err != nil {
		return nil, err
	}

	session := &domain.CombatSession{
		CallerID:        callerID,
		Kind:            kind,
		Enemy:           enemy,
		BotID:           botID,
		EnemyHealth:     enemy.Stats.Health,
		PlayerHealth:    playerStats.Health,
		PlayerMaxHealth: playerStats.Health,
		Ongoing:         true,
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("caller_id", callerID).
		Str("kind", string(kind)).
		Str("enemy", enemy.Name).
		Int64("enemy_health", session.EnemyHealth).
		Int64("player_health", session.PlayerHealth).
		Msg("combat started")
	return session, nil
}

// Attack resolves one round against the regular-enemy session.
func (s *CombatService) Attack(ctx context.Context, callerID string, kind domain.AttackKind) (*CombatOutcome, error) {
	return s.attack(ctx, callerID, domain.CombatEnemy, kind)
}

// AttackBot resolves one physical round against the bot session.
func (s *CombatService) AttackBot(ctx context.Context, callerID string) (*CombatOutcome, error) {
	return s.attack(ctx, callerID, domain.CombatBot, domain.AttackPhysical)
}

// attack applies attacker-first simultaneous resolution: the player strikes,
// and only if the enemy survives does it strike back in the same call. Both
// damage rolls are floored at DamageFloor so combat always terminates.
func (s *CombatService) attack(ctx context.Context, callerID string, sessionKind domain.CombatKind, attackKind domain.AttackKind) (*CombatOutcome, error) {
	unlock := s.locks.Lock(callerID)
	defer unlock()

	session, err := s.sessions.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Ongoing || session.Kind != sessionKind {
		return nil, domain.ErrNoActiveCombat
	}

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	playerStats, err := profile.ActiveEffectiveStats()
	if err != nil {
		return nil, err
	}

	power := playerStats.Attack
	if attackKind == domain.AttackMagic {
		power = playerStats.Magic
	}
	session.EnemyHealth -= damage(power, session.Enemy.Stats.Defense)
	if session.EnemyHealth <= 0 {
		session.EnemyHealth = 0
		return s.resolveWin(ctx, profile, session)
	}

	session.PlayerHealth -= damage(session.Enemy.Stats.Attack, playerStats.Defense)
	if session.PlayerHealth <= 0 {
		session.PlayerHealth = 0
		return s.resolveLoss(ctx, session)
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return &CombatOutcome{
		PlayerHealth: session.PlayerHealth,
		EnemyHealth:  session.EnemyHealth,
	}, nil
}

// resolveWin credits pet-scaled rewards, applies the survivor level-up loop
// and clears the session. The profile write and the session delete are the
// resolving call's only persistent effects.
func (s *CombatService) resolveWin(ctx context.Context, profile *domain.Profile, session *domain.CombatSession) (*CombatOutcome, error) {
	currency := session.Enemy.RewardCurrency
	exp := session.Enemy.RewardExp
	if _, pet := profile.Equipped(); pet != nil {
		currency = domain.ScaleReward(currency, pet.DropRateBonus)
		exp = domain.ScaleReward(exp, pet.ExperienceBonus)
	}

	if err := profile.CreditCurrency(currency); err != nil {
		return nil, err
	}
	if survivor := profile.Active(); survivor != nil {
		survivor.GainExperience(exp)
	}
	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, session.CallerID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("caller_id", session.CallerID).
		Str("enemy", session.Enemy.Name).
		Int64("currency", currency).
		Int64("exp", exp).
		Msg("combat won")
	return &CombatOutcome{
		PlayerHealth:     session.PlayerHealth,
		EnemyHealth:      0,
		Result:           &domain.CombatResult{Winner: domain.WinnerPlayer},
		RewardedCurrency: currency,
		RewardedExp:      exp,
	}, nil
}

// resolveLoss clears the session with no rewards. Survivor health is a
// combat-local quantity, so nothing on the profile changes.
func (s *CombatService) resolveLoss(ctx context.Context, session *domain.CombatSession) (*CombatOutcome, error) {
	if err := s.sessions.Delete(ctx, session.CallerID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("caller_id", session.CallerID).
		Str("enemy", session.Enemy.Name).
		Msg("combat lost")
	return &CombatOutcome{
		PlayerHealth: 0,
		EnemyHealth:  session.EnemyHealth,
		Result:       &domain.CombatResult{Winner: domain.WinnerEnemy},
	}, nil
}

// Status returns the active session of the given kind, or nil.
func (s *CombatService) Status(ctx context.Context, callerID string, kind domain.CombatKind) (*domain.CombatSession, error) {
	session, err := s.sessions.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Kind != kind {
		return nil, nil
	}
	return session, nil
}

// Bots exposes the bot catalog.
func (s *CombatService) Bots() []domain.Bot {
	return s.catalog.Bots()
}

func damage(attack, defense int64) int64 {
	d := attack - defense
	if d < constants.DamageFloor {
		return constants.DamageFloor
	}
	return d
}
