package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"survival-engine/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// SocialRepository covers roles, follow relationships and admin panel events.
type SocialRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSocialRepository(sqlDB *sql.DB, logger zerolog.Logger) *SocialRepository {
	return &SocialRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// GetRole returns the stored role, or ok=false when the caller has none
// assigned yet.
func (r *SocialRepository) GetRole(ctx context.Context, callerID string) (domain.UserRole, bool, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM user_roles WHERE caller_id = ?`, callerID).Scan(&role)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load role: %w", err)
	}
	return domain.UserRole(role), true, nil
}

func (r *SocialRepository) SetRole(ctx context.Context, callerID string, role domain.UserRole) error {
	now := time.Now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_roles (caller_id, role, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(caller_id) DO UPDATE SET role = excluded.role, updated_at = excluded.updated_at`,
		callerID, string(role), now)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}

func (r *SocialRepository) Follow(ctx context.Context, follower, target string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO follows (follower, target, created_at) VALUES (?, ?, ?)
		ON CONFLICT(follower, target) DO NOTHING`,
		follower, target, time.Now())
	if err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

func (r *SocialRepository) Unfollow(ctx context.Context, follower, target string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower = ? AND target = ?`, follower, target); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

func (r *SocialRepository) Following(ctx context.Context, follower string) ([]string, error) {
	return r.column(ctx,
		`SELECT target FROM follows WHERE follower = ? ORDER BY created_at`, follower)
}

func (r *SocialRepository) Followers(ctx context.Context, target string) ([]string, error) {
	return r.column(ctx,
		`SELECT follower FROM follows WHERE target = ? ORDER BY created_at`, target)
}

// Friends are mutual follows.
func (r *SocialRepository) Friends(ctx context.Context, callerID string) ([]string, error) {
	return r.column(ctx, `
		SELECT f.target FROM follows f
		JOIN follows b ON b.follower = f.target AND b.target = f.follower
		WHERE f.follower = ? ORDER BY f.created_at`, callerID)
}

func (r *SocialRepository) AddEvent(ctx context.Context, event *domain.AdminPanelEvent) error {
	if event.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		event.ID = id
	}
	event.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_events (id, creator, event_name, description, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.Creator, event.EventName, event.Description, event.Timestamp, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert admin event: %w", err)
	}
	return nil
}

func (r *SocialRepository) EventsFor(ctx context.Context, creator string) ([]domain.AdminPanelEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, creator, event_name, description, timestamp, created_at
		FROM admin_events WHERE creator = ? ORDER BY timestamp DESC`, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin events: %w", err)
	}
	defer rows.Close()

	events := []domain.AdminPanelEvent{}
	for rows.Next() {
		var e domain.AdminPanelEvent
		if err := rows.Scan(&e.ID, &e.Creator, &e.EventName, &e.Description, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *SocialRepository) column(ctx context.Context, query string, arg string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
