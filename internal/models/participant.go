package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParticipantStatus is the payment state of a participant within an event.
type ParticipantStatus string

const (
	// StatusOwes is the initial state: the participant has joined but not paid.
	StatusOwes ParticipantStatus = "OWES"

	// StatusPaid marks the participant as having paid. The status is asserted
	// by the organizer, never confirmed with the payment provider, and is
	// freely reversible back to OWES.
	StatusPaid ParticipantStatus = "PAID"
)

var (
	ErrParticipantNameRequired = errors.New("participant name is required")
	ErrEventIDRequired         = errors.New("participant requires an event id")
)

// ParseStatus converts a raw status string into a ParticipantStatus.
// Anything other than the two known states is rejected.
func ParseStatus(raw string) (ParticipantStatus, error) {
	switch ParticipantStatus(raw) {
	case StatusOwes:
		return StatusOwes, nil
	case StatusPaid:
		return StatusPaid, nil
	default:
		return "", fmt.Errorf("invalid participant status %q", raw)
	}
}

// Participant records one caller's membership and payment status within an
// Event. Rows are created once at join time and mutated only through status
// transitions; name and identity fields never change after creation.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// EventID references the event this participant joined.
	EventID string

	// Name is the display name entered at join time.
	Name string

	// Status is OWES or PAID.
	Status ParticipantStatus

	// JoinedAt is the RFC 3339 UTC timestamp of the join.
	JoinedAt string

	// ParticipantUserID is the authenticated user who joined, if any.
	// At most one of ParticipantUserID / GuestIdentityKey is set per row.
	ParticipantUserID string

	// GuestIdentityKey is the anonymous device key that joined, if any.
	GuestIdentityKey string

	// PaymentInitiatedAt is stamped when the join flow hands off to the
	// payment provider. Informational only.
	PaymentInitiatedAt string

	// MarkedPaidAt is set on the transition to PAID and cleared on the
	// transition back to OWES.
	MarkedPaidAt string

	// StatusChangedByUserID records the actor of the last status change.
	StatusChangedByUserID string

	// ReminderCount counts payment reminders sent for this participant.
	ReminderCount int

	// NoShowFlag marks a participant who joined but never showed up.
	NoShowFlag bool
}

// NewParticipant builds a Participant in the initial OWES state. The join
// time doubles as the payment-initiation stamp. When both an authenticated
// user id and a guest key are supplied, the authenticated id wins and the
// guest key is dropped, keeping one identity channel per row.
func NewParticipant(eventID, name, participantUserID, guestIdentityKey string) (*Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrParticipantNameRequired
	}
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	if participantUserID != "" {
		guestIdentityKey = ""
	}

	now := Now()
	return &Participant{
		ID:                 uuid.New().String(),
		EventID:            eventID,
		Name:               name,
		Status:             StatusOwes,
		JoinedAt:           now,
		ParticipantUserID:  participantUserID,
		GuestIdentityKey:   guestIdentityKey,
		PaymentInitiatedAt: now,
	}, nil
}
