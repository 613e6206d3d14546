package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vensoc/vensoc/internal/models"
)

// GetOrganizerProfile retrieves a user's organizer profile, returning
// (nil, nil) when the user has none.
func (s *SQLiteStore) GetOrganizerProfile(ctx context.Context, userID string) (*models.OrganizerProfile, error) {
	profile := &models.OrganizerProfile{}
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, venmo_username, venmo_username_normalized, created_at, updated_at
		 FROM organizer_profiles WHERE user_id = ?`,
		userID,
	).Scan(&profile.UserID, &profile.VenmoUsername, &profile.VenmoUsernameNormalized,
		&profile.CreatedAt, &profile.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer profile: %w", err)
	}
	return profile, nil
}

// UpsertOrganizerProfile creates the user's profile or replaces its handle,
// preserving created_at on conflict.
func (s *SQLiteStore) UpsertOrganizerProfile(ctx context.Context, profile *models.OrganizerProfile) error {
	if profile.CreatedAt == "" {
		profile.CreatedAt = models.Now()
	}
	if profile.UpdatedAt == "" {
		profile.UpdatedAt = profile.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organizer_profiles (user_id, venmo_username, venmo_username_normalized, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		     venmo_username = excluded.venmo_username,
		     venmo_username_normalized = excluded.venmo_username_normalized,
		     updated_at = excluded.updated_at`,
		profile.UserID, profile.VenmoUsername, profile.VenmoUsernameNormalized,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert organizer profile: %w", err)
	}
	return nil
}
