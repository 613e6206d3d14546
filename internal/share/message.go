// Package share renders the copyable status message an organizer or
// participant shares with the group.
package share

import (
	"fmt"
	"strings"

	"github.com/vensoc/vensoc/internal/models"
	"github.com/vensoc/vensoc/internal/venmo"
)

// FormatMessage renders the share message for an event:
//
//	<name> ($<amount> each)
//
//	✅ Paid: <names or None>
//	⏳ Owes: <names or None>
//
//	Pay here: <pay link>
func FormatMessage(event models.Event, participants []models.Participant) string {
	var paid, owes []models.Participant
	for _, p := range participants {
		if p.Status == models.StatusPaid {
			paid = append(paid, p)
		} else {
			owes = append(owes, p)
		}
	}

	payLink := venmo.BuildPayLink(event.OrganizerVenmoUsername, event.Amount, event.Name)

	lines := []string{
		fmt.Sprintf("%s ($%.2f each)", event.Name, event.Amount),
		"",
		"✅ Paid: " + nameList(paid),
		"⏳ Owes: " + nameList(owes),
		"",
		"Pay here: " + payLink,
	}
	return strings.Join(lines, "\n")
}

func nameList(participants []models.Participant) string {
	if len(participants) == 0 {
		return "None"
	}
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
