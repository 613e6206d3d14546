// Package summary computes the derived views over raw event and participant
// rows: per-event paid/owed aggregates, the organizer's event history, and
// the cross-event list of events a caller has joined. Everything here is a
// pure function over in-memory slices; the storage collaborator supplies the
// rows and their base ordering.
package summary

import "github.com/vensoc/vensoc/internal/models"

// Stats is the aggregate payment state of one event's participants.
// PaidCount+OwesCount always equals the number of participants.
type Stats struct {
	PaidCount  int
	OwesCount  int
	IsComplete bool
}

// Aggregate counts paid and owing participants. An event is complete when it
// has at least one participant and every one of them has paid; an empty
// event is never complete.
func Aggregate(participants []models.Participant) Stats {
	var stats Stats
	for _, p := range participants {
		if p.Status == models.StatusPaid {
			stats.PaidCount++
		} else {
			stats.OwesCount++
		}
	}
	stats.IsComplete = len(participants) > 0 && stats.PaidCount == len(participants)
	return stats
}
