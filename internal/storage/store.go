// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/vensoc/vensoc/internal/models"
)

// ErrNotFound is returned by mutating operations whose target row is absent.
// Lookup operations return a nil record instead, so callers can distinguish
// "missing" from a storage failure without unwrapping.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations the services require. The
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer, and lets tests run against a temp
// database. Every handle is injected explicitly; there is no package-level
// client.
type Store interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event by ID. Returns (nil, nil) when absent.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEventsByOrganizer returns the organizer's events ordered by
	// created_at descending (most recent first).
	ListEventsByOrganizer(ctx context.Context, organizerUserID string) ([]models.Event, error)

	// ListEventsByIDs returns the live events among the given IDs, in no
	// particular order. Missing IDs are skipped, not errors.
	ListEventsByIDs(ctx context.Context, eventIDs []string) ([]models.Event, error)

	// DeleteEvent removes an event and, via cascade, all its participants.
	// Returns ErrNotFound when no such event exists.
	DeleteEvent(ctx context.Context, eventID string) error

	// CreateParticipant persists a new participant row.
	CreateParticipant(ctx context.Context, participant *models.Participant) error

	// GetParticipant retrieves a participant by ID. Returns (nil, nil) when
	// absent.
	GetParticipant(ctx context.Context, participantID string) (*models.Participant, error)

	// ListParticipantsByEvent returns an event's participants ordered by
	// joined_at ascending (earliest joiner first).
	ListParticipantsByEvent(ctx context.Context, eventID string) ([]models.Participant, error)

	// ListParticipantsByEvents returns all participants across the given
	// events, unordered.
	ListParticipantsByEvents(ctx context.Context, eventIDs []string) ([]models.Participant, error)

	// ListParticipantsByIdentity returns every participant row matching the
	// authenticated user ID or the guest identity key (either may be empty,
	// not both), ordered by joined_at descending.
	ListParticipantsByIdentity(ctx context.Context, userID, guestKey string) ([]models.Participant, error)

	// UpdateParticipantStatus applies a status transition: sets status,
	// marked_paid_at (cleared when empty), and the acting user. Returns
	// ErrNotFound when the participant is absent.
	UpdateParticipantStatus(ctx context.Context, participantID string, status models.ParticipantStatus, markedPaidAt, actorUserID string) error

	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when
	// absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetOrganizerProfile retrieves a user's organizer profile. Returns
	// (nil, nil) when the user has none.
	GetOrganizerProfile(ctx context.Context, userID string) (*models.OrganizerProfile, error)

	// UpsertOrganizerProfile creates or replaces the user's profile.
	UpsertOrganizerProfile(ctx context.Context, profile *models.OrganizerProfile) error

	// Close releases any resources held by the store.
	Close() error
}
