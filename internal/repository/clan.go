package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"survival-engine/internal/domain"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type ClanRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewClanRepository(sqlDB *sql.DB, logger zerolog.Logger) *ClanRepository {
	return &ClanRepository{
		db:     sqlDB,
		logger: logger,
	}
}

func (r *ClanRepository) InsertListing(ctx context.Context, listing *domain.WhyDontYouJoin) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO join_listings (name, description, image_url, leader, active, member_count, created_at)
		VALUES (?, ?, ?, ?, TRUE, 0, ?)`,
		listing.Name, listing.Description, listing.ImageURL, listing.Leader, now)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read listing id: %w", err)
	}
	listing.ID = id
	listing.Active = true
	listing.CreatedAt = now
	return nil
}

// GetActiveListing loads a listing that is still open for claiming.
func (r *ClanRepository) GetActiveListing(ctx context.Context, id int64) (*domain.WhyDontYouJoin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, image_url, leader, active, member_count, created_at
		FROM join_listings WHERE id = ? AND active = TRUE`, id)
	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	return listing, nil
}

func (r *ClanRepository) ActiveListings(ctx context.Context) ([]domain.WhyDontYouJoin, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, image_url, leader, active, member_count, created_at
		FROM join_listings WHERE active = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.WhyDontYouJoin
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.WhyDontYouJoin, error) {
	var listing domain.WhyDontYouJoin
	err := row.Scan(&listing.ID, &listing.Name, &listing.Description, &listing.ImageURL,
		&listing.Leader, &listing.Active, &listing.MemberCount, &listing.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// CreateClanFromListing atomically creates the clan, seeds membership with the
// listing leader and consumes the listing. The UNIQUE constraint on
// clan_members.caller_id turns a second membership for the leader into
// domain.ErrAlreadyMember.
func (r *ClanRepository) CreateClanFromListing(ctx context.Context, name string, listing *domain.WhyDontYouJoin) (*domain.Clan, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO clans (name, founder, member_count, created_at) VALUES (?, ?, 1, ?)`,
		name, listing.Leader, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert clan: %w", err)
	}
	clanID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read clan id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO clan_members (clan_id, caller_id, joined_at) VALUES (?, ?, ?)`,
		clanID, listing.Leader, now); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to seed clan membership: %w", err)
	}

	consumed, err := tx.ExecContext(ctx, `
		UPDATE join_listings SET active = FALSE WHERE id = ? AND active = TRUE`, listing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume listing: %w", err)
	}
	if n, err := consumed.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to check listing consumption: %w", err)
	} else if n == 0 {
		// Lost the race to another claimer.
		return nil, domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit clan creation: %w", err)
	}

	return &domain.Clan{
		ID:          clanID,
		Name:        name,
		Founder:     listing.Leader,
		Members:     []string{listing.Leader},
		MemberCount: 1,
		CreatedAt:   now,
	}, nil
}

// AddMember performs the join transition: member row plus count update in one
// transaction so the count always equals the member-set cardinality.
func (r *ClanRepository) AddMember(ctx context.Context, clanID int64, callerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var one int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM clans WHERE id = ?`, clanID).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to load clan: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO clan_members (clan_id, caller_id, joined_at) VALUES (?, ?, ?)`,
		clanID, callerID, time.Now()); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE clans SET member_count = member_count + 1 WHERE id = ?`, clanID); err != nil {
		return fmt.Errorf("failed to update member count: %w", err)
	}

	return tx.Commit()
}

// MemberOf returns the id of the clan the caller belongs to, if any.
func (r *ClanRepository) MemberOf(ctx context.Context, callerID string) (int64, bool, error) {
	var clanID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT clan_id FROM clan_members WHERE caller_id = ?`, callerID).Scan(&clanID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to check membership: %w", err)
	}
	return clanID, true, nil
}

// Clans returns the full marketplace with member sets attached.
func (r *ClanRepository) Clans(ctx context.Context) ([]domain.Clan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, founder, member_count, created_at FROM clans ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clans: %w", err)
	}
	defer rows.Close()

	var clans []domain.Clan
	for rows.Next() {
		var c domain.Clan
		if err := rows.Scan(&c.ID, &c.Name, &c.Founder, &c.MemberCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan clan: %w", err)
		}
		clans = append(clans, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range clans {
		members, err := r.members(ctx, clans[i].ID)
		if err != nil {
			return nil, err
		}
		clans[i].Members = members
	}
	return clans, nil
}

func (r *ClanRepository) members(ctx context.Context, clanID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT caller_id FROM clan_members WHERE clan_id = ? ORDER BY joined_at`, clanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, id)
	}
	return members, rows.Err()
}

func isUniqueViolation(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
