package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vensoc/vensoc/internal/models"
	"github.com/vensoc/vensoc/internal/storage"
)

const eventColumns = "id, name, amount, organizer_venmo_username, organizer_user_id, created_at"

// CreateEvent persists a new event.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = models.GenerateEventID()
	}
	if event.CreatedAt == "" {
		event.CreatedAt = models.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events ("+eventColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.Name, event.Amount,
		event.OrganizerVenmoUsername, event.OrganizerUserID, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID, returning (nil, nil) when absent.
func (s *SQLiteStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event := &models.Event{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id = ?", eventID,
	).Scan(&event.ID, &event.Name, &event.Amount,
		&event.OrganizerVenmoUsername, &event.OrganizerUserID, &event.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListEventsByOrganizer returns the organizer's events, most recent first.
func (s *SQLiteStore) ListEventsByOrganizer(ctx context.Context, organizerUserID string) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE organizer_user_id = ? ORDER BY created_at DESC",
		organizerUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizer events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListEventsByIDs returns the live events among the given IDs.
func (s *SQLiteStore) ListEventsByIDs(ctx context.Context, eventIDs []string) ([]models.Event, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id IN ("+placeholders(len(eventIDs))+")",
		toArgs(eventIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by ids: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// DeleteEvent removes an event; participants go with it via cascade.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, eventID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Name, &event.Amount,
			&event.OrganizerVenmoUsername, &event.OrganizerUserID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}
