package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"survival-engine/internal/domain"

	"github.com/rs/zerolog"
)

type CombatRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewCombatRepository(sqlDB *sql.DB, logger zerolog.Logger) *CombatRepository {
	return &CombatRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Get returns the caller's active session, or nil when no combat is ongoing.
func (r *CombatRepository) Get(ctx context.Context, callerID string) (*domain.CombatSession, error) {
	var (
		kind         string
		enemyJSON    string
		botID        sql.NullInt64
		enemyHealth  int64
		playerHealth int64
		playerMax    int64
		ongoing      bool
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT kind, enemy, bot_id, enemy_health, player_health, player_max_health, ongoing
		FROM combat_sessions WHERE caller_id = ?`, callerID).
		Scan(&kind, &enemyJSON, &botID, &enemyHealth, &playerHealth, &playerMax, &ongoing)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("caller_id", callerID).Msg("failed to load combat session")
		return nil, fmt.Errorf("failed to load combat session: %w", err)
	}

	var enemy domain.Enemy
	if err := json.Unmarshal([]byte(enemyJSON), &enemy); err != nil {
		return nil, fmt.Errorf("failed to decode enemy snapshot: %w", err)
	}

	session := &domain.CombatSession{
		CallerID:        callerID,
		Kind:            domain.CombatKind(kind),
		Enemy:           enemy,
		EnemyHealth:     enemyHealth,
		PlayerHealth:    playerHealth,
		PlayerMaxHealth: playerMax,
		Ongoing:         ongoing,
	}
	if botID.Valid {
		session.BotID = &botID.Int64
	}
	return session, nil
}

// Put upserts the caller's session row.
func (r *CombatRepository) Put(ctx context.Context, session *domain.CombatSession) error {
	enemyJSON, err := json.Marshal(session.Enemy)
	if err != nil {
		return fmt.Errorf("failed to encode enemy snapshot: %w", err)
	}

	var botID sql.NullInt64
	if session.BotID != nil {
		botID = sql.NullInt64{Int64: *session.BotID, Valid: true}
	}

	now := time.Now()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO combat_sessions
			(caller_id, kind, enemy, bot_id, enemy_health, player_health, player_max_health, ongoing, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(caller_id) DO UPDATE SET
			kind = excluded.kind,
			enemy = excluded.enemy,
			bot_id = excluded.bot_id,
			enemy_health = excluded.enemy_health,
			player_health = excluded.player_health,
			player_max_health = excluded.player_max_health,
			ongoing = excluded.ongoing,
			updated_at = excluded.updated_at`,
		session.CallerID, string(session.Kind), string(enemyJSON), botID,
		session.EnemyHealth, session.PlayerHealth, session.PlayerMaxHealth,
		session.Ongoing, now, now)
	if err != nil {
		r.logger.Error().Err(err).Str("caller_id", session.CallerID).Msg("failed to persist combat session")
		return fmt.Errorf("failed to persist combat session: %w", err)
	}
	return nil
}

// Delete clears the caller's session on resolution.
func (r *CombatRepository) Delete(ctx context.Context, callerID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM combat_sessions WHERE caller_id = ?`, callerID); err != nil {
		return fmt.Errorf("failed to clear combat session: %w", err)
	}
	return nil
}
