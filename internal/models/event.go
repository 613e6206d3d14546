package models

import (
	"crypto/rand"
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrEventNameRequired = errors.New("event name is required")
	ErrAmountNotPositive = errors.New("amount must be greater than 0")
	ErrOrganizerRequired = errors.New("event requires an organizer with a payment handle")
)

// Event represents a cost-sharing session with a fixed per-person amount.
// Events are immutable after creation except for deletion, which cascades to
// the event's participants at the storage layer.
type Event struct {
	// ID is the unique identifier for the event ("evt_" + 8 base36 chars).
	ID string

	// Name is the display name of the event (e.g., "Snow Trip").
	Name string

	// Amount is the per-person amount in dollars, always two decimal places.
	Amount float64

	// OrganizerVenmoUsername is the organizer's payment handle at creation
	// time, denormalized from the organizer profile.
	OrganizerVenmoUsername string

	// OrganizerUserID is the user ID of the event's sole organizer.
	OrganizerUserID string

	// CreatedAt is the RFC 3339 UTC timestamp when the event was created.
	CreatedAt string
}

// NewEvent builds an Event, enforcing its invariants: non-empty trimmed name,
// positive amount rounded to two decimals, and a resolvable organizer. An
// empty id is replaced with a generated one.
func NewEvent(id, name string, amount float64, organizerUserID, organizerVenmoUsername string) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEventNameRequired
	}
	amount = math.Round(amount*100) / 100
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if organizerUserID == "" || strings.TrimSpace(organizerVenmoUsername) == "" {
		return nil, ErrOrganizerRequired
	}
	if id == "" {
		id = GenerateEventID()
	}

	return &Event{
		ID:                     id,
		Name:                   name,
		Amount:                 amount,
		OrganizerVenmoUsername: organizerVenmoUsername,
		OrganizerUserID:        organizerUserID,
		CreatedAt:              Now(),
	}, nil
}

const eventIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateEventID returns a short shareable event id of the form
// "evt_xxxxxxxx".
func GenerateEventID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = eventIDAlphabet[int(b)%len(eventIDAlphabet)]
	}
	return "evt_" + string(buf)
}

// timeLayout is RFC 3339 UTC with a fixed-width 9-digit fraction. The width
// matters: records are ordered by comparing timestamp strings, and trailing
// zeros must not be stripped or lexicographic order diverges from time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Now returns the current time as an RFC 3339 UTC string, the timestamp
// format used across all records.
func Now() string {
	return time.Now().UTC().Format(timeLayout)
}
