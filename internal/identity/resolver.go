// Package identity decides who a caller "is": it mints and persists the
// durable guest identity key for anonymous callers, and resolves which
// participant row of an event represents the current caller across the
// authenticated and guest identity channels.
package identity

import (
	"github.com/vensoc/vensoc/internal/models"
)

// ResolveCurrentParticipant selects the participant row that represents the
// caller identified by authUserID and/or guestKey, or nil when the caller
// has not joined. A row matches when its participant user id equals a
// non-empty authUserID or its guest identity key equals a non-empty
// guestKey. When several rows match (both channels joined separately, or
// duplicate joins), the most recent join wins; equal join times fall back to
// the greater id so the choice stays deterministic.
//
// Pure function: no I/O, no mutation. Identical inputs yield a pointer to
// the same element of participants.
func ResolveCurrentParticipant(participants []models.Participant, authUserID, guestKey string) *models.Participant {
	var current *models.Participant

	for i := range participants {
		p := &participants[i]
		matchesUser := authUserID != "" && p.ParticipantUserID == authUserID
		matchesGuest := guestKey != "" && p.GuestIdentityKey == guestKey
		if !matchesUser && !matchesGuest {
			continue
		}
		if current == nil || laterJoin(p, current) {
			current = p
		}
	}

	return current
}

// laterJoin reports whether a joined after b, breaking joined_at ties by id.
// Timestamps are RFC 3339 UTC strings, so lexicographic order is time order.
func laterJoin(a, b *models.Participant) bool {
	if a.JoinedAt != b.JoinedAt {
		return a.JoinedAt > b.JoinedAt
	}
	return a.ID > b.ID
}
