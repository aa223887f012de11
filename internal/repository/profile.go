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

type ProfileRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewProfileRepository(sqlDB *sql.DB, logger zerolog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Get loads the caller's profile. Returns domain.ErrProfileNotFound when the
// caller has not created one yet.
func (r *ProfileRepository) Get(ctx context.Context, callerID string) (*domain.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE caller_id = ?`, callerID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("caller_id", callerID).Msg("failed to load profile")
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	profile.CallerID = callerID
	return &profile, nil
}

// Exists reports whether the caller already has a profile row.
func (r *ProfileRepository) Exists(ctx context.Context, callerID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM profiles WHERE caller_id = ?`, callerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return true, nil
}

// Put upserts the whole profile record. Every mutating operation persists
// through here exactly once, after the full transition has been applied.
func (r *ProfileRepository) Put(ctx context.Context, profile *domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	now := time.Now()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (caller_id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(caller_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		profile.CallerID, string(data), now, now)
	if err != nil {
		r.logger.Error().Err(err).Str("caller_id", profile.CallerID).Msg("failed to persist profile")
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}
