package summary

import (
	"testing"

	"github.com/vensoc/vensoc/internal/models"
)

func joinedRow(id, eventID, joinedAt string, status models.ParticipantStatus) models.Participant {
	return models.Participant{
		ID:       id,
		EventID:  eventID,
		Name:     "P-" + id,
		Status:   status,
		JoinedAt: joinedAt,
	}
}

func event(id, createdAt string) models.Event {
	return models.Event{
		ID:                     id,
		Name:                   "Event " + id,
		Amount:                 10,
		OrganizerVenmoUsername: "organizer",
		OrganizerUserID:        "user_org",
		CreatedAt:              createdAt,
	}
}

func TestBuildJoinedSummaries(t *testing.T) {
	// Caller rows arrive joined_at descending, as the store returns them.
	callerRows := []models.Participant{
		joinedRow("p3", "evt_b", "2026-03-03T10:00:00Z", models.StatusOwes),
		joinedRow("p2", "evt_a", "2026-02-02T10:00:00Z", models.StatusPaid),
		joinedRow("p1", "evt_a", "2026-01-01T10:00:00Z", models.StatusOwes), // duplicate join, older
	}
	events := []models.Event{
		event("evt_a", "2026-01-01T00:00:00Z"),
		event("evt_b", "2026-03-01T00:00:00Z"),
	}
	allParticipants := []models.Participant{
		joinedRow("p1", "evt_a", "2026-01-01T10:00:00Z", models.StatusOwes),
		joinedRow("p2", "evt_a", "2026-02-02T10:00:00Z", models.StatusPaid),
		joinedRow("p4", "evt_a", "2026-02-03T10:00:00Z", models.StatusPaid),
		joinedRow("p3", "evt_b", "2026-03-03T10:00:00Z", models.StatusOwes),
	}

	summaries := BuildJoinedSummaries(callerRows, events, allParticipants)

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	// Most recently joined event first.
	if summaries[0].Event.ID != "evt_b" || summaries[1].Event.ID != "evt_a" {
		t.Errorf("wrong order: %s, %s", summaries[0].Event.ID, summaries[1].Event.ID)
	}

	// Dedup keeps the first-seen (most recent) row per event.
	if summaries[1].Participant.ID != "p2" {
		t.Errorf("canonical participant for evt_a: expected p2, got %s", summaries[1].Participant.ID)
	}

	evtA := summaries[1]
	if evtA.PaidCount != 2 || evtA.OwesCount != 1 || evtA.TotalParticipants != 3 {
		t.Errorf("evt_a stats: got paid=%d owes=%d total=%d",
			evtA.PaidCount, evtA.OwesCount, evtA.TotalParticipants)
	}

	evtB := summaries[0]
	if evtB.PaidCount != 0 || evtB.OwesCount != 1 || evtB.TotalParticipants != 1 {
		t.Errorf("evt_b stats: got paid=%d owes=%d total=%d",
			evtB.PaidCount, evtB.OwesCount, evtB.TotalParticipants)
	}
}

func TestBuildJoinedSummariesDropsDanglingEvents(t *testing.T) {
	callerRows := []models.Participant{
		joinedRow("p1", "evt_deleted", "2026-02-02T10:00:00Z", models.StatusOwes),
		joinedRow("p2", "evt_live", "2026-01-01T10:00:00Z", models.StatusOwes),
	}
	events := []models.Event{event("evt_live", "2026-01-01T00:00:00Z")}
	allParticipants := []models.Participant{
		joinedRow("p2", "evt_live", "2026-01-01T10:00:00Z", models.StatusOwes),
	}

	summaries := BuildJoinedSummaries(callerRows, events, allParticipants)

	if len(summaries) != 1 {
		t.Fatalf("expected dangling event dropped, got %d summaries", len(summaries))
	}
	if summaries[0].Event.ID != "evt_live" {
		t.Errorf("expected evt_live, got %s", summaries[0].Event.ID)
	}
}

func TestBuildJoinedSummariesEmpty(t *testing.T) {
	if got := BuildJoinedSummaries(nil, nil, nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}
