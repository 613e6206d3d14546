package summary

import (
	"sort"

	"github.com/vensoc/vensoc/internal/models"
)

// JoinedSummary is one entry of a caller's "events I have joined" list: the
// event, the caller's canonical participant row in it, and the event's
// aggregate counts.
type JoinedSummary struct {
	Event             models.Event
	Participant       models.Participant
	PaidCount         int
	OwesCount         int
	TotalParticipants int
}

// BuildJoinedSummaries assembles the joined-events list for a caller.
//
// callerRows are every participant row matching the caller's identity across
// events, pre-sorted by joined_at descending by the store; the first row
// seen per event is therefore the caller's most recent join and becomes the
// canonical participant for that event. events are the live events those
// rows reference; a row whose event is missing (deleted between reads) is
// dropped, never an error. allParticipants are all rows across those events
// and feed the per-event aggregates.
//
// Output is ordered by the canonical participant's joined_at descending:
// most recently joined event first.
func BuildJoinedSummaries(callerRows []models.Participant, events []models.Event, allParticipants []models.Participant) []JoinedSummary {
	canonical := make(map[string]models.Participant)
	order := make([]string, 0, len(callerRows))
	for _, row := range callerRows {
		if _, seen := canonical[row.EventID]; seen {
			continue
		}
		canonical[row.EventID] = row
		order = append(order, row.EventID)
	}

	eventsByID := make(map[string]models.Event, len(events))
	for _, event := range events {
		eventsByID[event.ID] = event
	}

	statsByEvent := make(map[string]Stats)
	countByEvent := make(map[string]int)
	for _, p := range allParticipants {
		stats := statsByEvent[p.EventID]
		if p.Status == models.StatusPaid {
			stats.PaidCount++
		} else {
			stats.OwesCount++
		}
		statsByEvent[p.EventID] = stats
		countByEvent[p.EventID]++
	}

	summaries := make([]JoinedSummary, 0, len(order))
	for _, eventID := range order {
		event, ok := eventsByID[eventID]
		if !ok {
			continue
		}
		stats := statsByEvent[eventID]
		summaries = append(summaries, JoinedSummary{
			Event:             event,
			Participant:       canonical[eventID],
			PaidCount:         stats.PaidCount,
			OwesCount:         stats.OwesCount,
			TotalParticipants: countByEvent[eventID],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Participant.JoinedAt > summaries[j].Participant.JoinedAt
	})

	return summaries
}
