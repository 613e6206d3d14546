package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vensoc/vensoc/internal/models"
	"github.com/vensoc/vensoc/internal/storage"
)

const participantColumns = `id, event_id, name, status, joined_at,
	participant_user_id, guest_identity_key, payment_initiated_at,
	marked_paid_at, status_changed_by_user_id, reminder_count, no_show_flag`

// CreateParticipant persists a new participant row.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.JoinedAt == "" {
		participant.JoinedAt = models.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO participants (`+participantColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		participant.ID, participant.EventID, participant.Name,
		string(participant.Status), participant.JoinedAt,
		nullable(participant.ParticipantUserID),
		nullable(participant.GuestIdentityKey),
		nullable(participant.PaymentInitiatedAt),
		nullable(participant.MarkedPaidAt),
		nullable(participant.StatusChangedByUserID),
		participant.ReminderCount, participant.NoShowFlag,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// GetParticipant retrieves a participant by ID, returning (nil, nil) when
// absent.
func (s *SQLiteStore) GetParticipant(ctx context.Context, participantID string) (*models.Participant, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE id = ?", participantID)

	participant, err := scanParticipantRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

// ListParticipantsByEvent returns an event's participants, earliest joiner
// first.
func (s *SQLiteStore) ListParticipantsByEvent(ctx context.Context, eventID string) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE event_id = ? ORDER BY joined_at ASC",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

// ListParticipantsByEvents returns all participants across the given events.
func (s *SQLiteStore) ListParticipantsByEvents(ctx context.Context, eventIDs []string) ([]models.Participant, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE event_id IN ("+placeholders(len(eventIDs))+")",
		toArgs(eventIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants by events: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

// ListParticipantsByIdentity returns every row matching the user ID or the
// guest key, most recent join first. Both identity channels are matched so a
// guest who later signed in still sees their guest joins.
func (s *SQLiteStore) ListParticipantsByIdentity(ctx context.Context, userID, guestKey string) ([]models.Participant, error) {
	if userID == "" && guestKey == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+participantColumns+` FROM participants
		 WHERE (? != '' AND participant_user_id = ?)
		    OR (? != '' AND guest_identity_key = ?)
		 ORDER BY joined_at DESC`,
		userID, userID, guestKey, guestKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants by identity: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

// UpdateParticipantStatus applies a status transition with its audit fields.
func (s *SQLiteStore) UpdateParticipantStatus(ctx context.Context, participantID string, status models.ParticipantStatus, markedPaidAt, actorUserID string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE participants
		 SET status = ?, marked_paid_at = ?, status_changed_by_user_id = ?
		 WHERE id = ?`,
		string(status), nullable(markedPaidAt), nullable(actorUserID), participantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("participant %s: %w", participantID, storage.ErrNotFound)
	}
	return nil
}

func scanParticipants(rows *sql.Rows) ([]models.Participant, error) {
	var participants []models.Participant
	for rows.Next() {
		participant, err := scanParticipantRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, *participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

func scanParticipantRow(scan func(dest ...any) error) (*models.Participant, error) {
	var (
		p          models.Participant
		status     string
		userID     sql.NullString
		guestKey   sql.NullString
		payInit    sql.NullString
		markedPaid sql.NullString
		changedBy  sql.NullString
	)
	err := scan(&p.ID, &p.EventID, &p.Name, &status, &p.JoinedAt,
		&userID, &guestKey, &payInit, &markedPaid, &changedBy,
		&p.ReminderCount, &p.NoShowFlag)
	if err != nil {
		return nil, err
	}
	p.Status = models.ParticipantStatus(status)
	p.ParticipantUserID = userID.String
	p.GuestIdentityKey = guestKey.String
	p.PaymentInitiatedAt = payInit.String
	p.MarkedPaidAt = markedPaid.String
	p.StatusChangedByUserID = changedBy.String
	return &p, nil
}
