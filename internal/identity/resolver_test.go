package identity

import (
	"testing"

	"github.com/vensoc/vensoc/internal/models"
)

func participant(id, eventID, userID, guestKey, joinedAt string) models.Participant {
	return models.Participant{
		ID:                id,
		EventID:           eventID,
		Name:              "P-" + id,
		Status:            models.StatusOwes,
		JoinedAt:          joinedAt,
		ParticipantUserID: userID,
		GuestIdentityKey:  guestKey,
	}
}

func TestResolveCurrentParticipant(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
		authUserID   string
		guestKey     string
		wantID       string // "" means nil
	}{
		{
			name: "no identity matches nothing",
			participants: []models.Participant{
				participant("p1", "evt_1", "user_1", "", "2026-01-01T10:00:00Z"),
			},
			wantID: "",
		},
		{
			name: "auth id match",
			participants: []models.Participant{
				participant("p1", "evt_1", "user_1", "", "2026-01-01T10:00:00Z"),
				participant("p2", "evt_1", "user_2", "", "2026-01-01T11:00:00Z"),
			},
			authUserID: "user_1",
			wantID:     "p1",
		},
		{
			name: "guest key match",
			participants: []models.Participant{
				participant("p1", "evt_1", "", "guest_a", "2026-01-01T10:00:00Z"),
			},
			guestKey: "guest_a",
			wantID:   "p1",
		},
		{
			name: "empty guest key never matches empty column",
			participants: []models.Participant{
				participant("p1", "evt_1", "user_1", "", "2026-01-01T10:00:00Z"),
			},
			guestKey: "",
			wantID:   "",
		},
		{
			name: "most recent join wins across duplicate guest joins",
			participants: []models.Participant{
				participant("p1", "evt_1", "", "guest_a", "2026-01-01T10:00:00Z"),
				participant("p2", "evt_1", "", "guest_a", "2026-01-02T10:00:00Z"),
			},
			guestKey: "guest_a",
			wantID:   "p2",
		},
		{
			name: "both channels joined separately, later one is canonical",
			participants: []models.Participant{
				participant("p1", "evt_1", "", "guest_a", "2026-01-01T10:00:00Z"),
				participant("p2", "evt_1", "user_1", "", "2026-01-03T10:00:00Z"),
			},
			authUserID: "user_1",
			guestKey:   "guest_a",
			wantID:     "p2",
		},
		{
			name: "sub-second joins resolve by time",
			participants: []models.Participant{
				participant("p1", "evt_1", "", "guest_a", "2026-01-01T10:00:00.500000000Z"),
				participant("p2", "evt_1", "", "guest_a", "2026-01-01T10:00:00.510000000Z"),
			},
			guestKey: "guest_a",
			wantID:   "p2",
		},
		{
			name: "equal join times break ties by greater id",
			participants: []models.Participant{
				participant("p1", "evt_1", "", "guest_a", "2026-01-01T10:00:00Z"),
				participant("p2", "evt_1", "", "guest_a", "2026-01-01T10:00:00Z"),
			},
			guestKey: "guest_a",
			wantID:   "p2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCurrentParticipant(tt.participants, tt.authUserID, tt.guestKey)
			if tt.wantID == "" {
				if got != nil {
					t.Fatalf("expected nil, got %s", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got nil", tt.wantID)
			}
			if got.ID != tt.wantID {
				t.Errorf("expected %s, got %s", tt.wantID, got.ID)
			}
		})
	}
}

func TestResolveCurrentParticipantIdempotent(t *testing.T) {
	participants := []models.Participant{
		participant("p1", "evt_1", "", "guest_a", "2026-01-01T10:00:00Z"),
		participant("p2", "evt_1", "", "guest_a", "2026-01-02T10:00:00Z"),
	}

	first := ResolveCurrentParticipant(participants, "", "guest_a")
	second := ResolveCurrentParticipant(participants, "", "guest_a")

	if first == nil || second == nil {
		t.Fatal("expected a match")
	}
	if first != second {
		t.Error("expected identical result identity for identical inputs")
	}
}

func TestResolveCurrentParticipantDoesNotMutate(t *testing.T) {
	participants := []models.Participant{
		participant("p1", "evt_1", "user_1", "", "2026-01-01T10:00:00Z"),
	}
	before := participants[0]

	ResolveCurrentParticipant(participants, "user_1", "")

	if participants[0] != before {
		t.Error("resolver mutated its input")
	}
}
