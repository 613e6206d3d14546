package summary

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vensoc/vensoc/internal/models"
)

// TestProperty_AggregateCounts validates the aggregate invariants over
// arbitrary participant collections:
//   - paidCount + owesCount always equals the collection size
//   - isComplete holds exactly when the collection is non-empty and all paid
func TestProperty_AggregateCounts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	fromBools := func(paid []bool) []models.Participant {
		participants := make([]models.Participant, len(paid))
		for i, isPaid := range paid {
			status := models.StatusOwes
			if isPaid {
				status = models.StatusPaid
			}
			participants[i] = models.Participant{EventID: "evt_1", Status: status}
		}
		return participants
	}

	properties.Property("paid plus owes equals participant count", prop.ForAll(
		func(paid []bool) bool {
			stats := Aggregate(fromBools(paid))
			return stats.PaidCount+stats.OwesCount == len(paid)
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("complete iff non-empty and everyone paid", prop.ForAll(
		func(paid []bool) bool {
			stats := Aggregate(fromBools(paid))
			allPaid := len(paid) > 0
			for _, p := range paid {
				if !p {
					allPaid = false
					break
				}
			}
			return stats.IsComplete == allPaid
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
