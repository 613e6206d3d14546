package summary

import (
	"sort"

	"github.com/vensoc/vensoc/internal/models"
)

// OrganizerSummary is one entry of an organizer's event history: the event,
// its participants in join order, and the aggregate counts.
type OrganizerSummary struct {
	Event        models.Event
	Participants []models.Participant
	PaidCount    int
	OwesCount    int
}

// BuildOrganizerSummaries groups participants by event and attaches
// aggregates. events arrive ordered by created_at descending from the store
// and that order is preserved. Each event's participants are sorted by
// joined_at ascending so the earliest joiner displays first; an event with
// no participants yields an empty group with zero counts.
func BuildOrganizerSummaries(events []models.Event, participants []models.Participant) []OrganizerSummary {
	byEvent := make(map[string][]models.Participant)
	for _, p := range participants {
		byEvent[p.EventID] = append(byEvent[p.EventID], p)
	}

	summaries := make([]OrganizerSummary, 0, len(events))
	for _, event := range events {
		group := byEvent[event.ID]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].JoinedAt < group[j].JoinedAt
		})
		stats := Aggregate(group)
		summaries = append(summaries, OrganizerSummary{
			Event:        event,
			Participants: group,
			PaidCount:    stats.PaidCount,
			OwesCount:    stats.OwesCount,
		})
	}

	return summaries
}
