// Package service implements the Connect RPC services: auth, organizer
// profiles, and events. Services hold no state beyond their injected
// collaborators; identity arrives through the request context, never from a
// process-wide session.
package service

import (
	"github.com/vensoc/vensoc/internal/models"
	"github.com/vensoc/vensoc/internal/rpc"
	"github.com/vensoc/vensoc/internal/summary"
)

func toWireUser(user *models.User) rpc.User {
	return rpc.User{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func toWireProfile(profile *models.OrganizerProfile) rpc.OrganizerProfile {
	return rpc.OrganizerProfile{
		UserID:                  profile.UserID,
		VenmoUsername:           profile.VenmoUsername,
		VenmoUsernameNormalized: profile.VenmoUsernameNormalized,
		CreatedAt:               profile.CreatedAt,
		UpdatedAt:               profile.UpdatedAt,
	}
}

func toWireEvent(event *models.Event) rpc.Event {
	return rpc.Event{
		ID:                     event.ID,
		Name:                   event.Name,
		Amount:                 event.Amount,
		OrganizerVenmoUsername: event.OrganizerVenmoUsername,
		OrganizerUserID:        event.OrganizerUserID,
		CreatedAt:              event.CreatedAt,
	}
}

func toWireParticipant(participant *models.Participant) rpc.Participant {
	return rpc.Participant{
		ID:                    participant.ID,
		EventID:               participant.EventID,
		Name:                  participant.Name,
		Status:                string(participant.Status),
		JoinedAt:              participant.JoinedAt,
		ParticipantUserID:     participant.ParticipantUserID,
		GuestIdentityKey:      participant.GuestIdentityKey,
		PaymentInitiatedAt:    participant.PaymentInitiatedAt,
		MarkedPaidAt:          participant.MarkedPaidAt,
		StatusChangedByUserID: participant.StatusChangedByUserID,
		ReminderCount:         participant.ReminderCount,
		NoShowFlag:            participant.NoShowFlag,
	}
}

func toWireParticipants(participants []models.Participant) []rpc.Participant {
	wire := make([]rpc.Participant, len(participants))
	for i := range participants {
		wire[i] = toWireParticipant(&participants[i])
	}
	return wire
}

func toWireOrganizerSummaries(summaries []summary.OrganizerSummary) []rpc.OrganizerSummary {
	wire := make([]rpc.OrganizerSummary, len(summaries))
	for i, s := range summaries {
		wire[i] = rpc.OrganizerSummary{
			Event:        toWireEvent(&s.Event),
			Participants: toWireParticipants(s.Participants),
			PaidCount:    s.PaidCount,
			OwesCount:    s.OwesCount,
		}
	}
	return wire
}

func toWireJoinedSummaries(summaries []summary.JoinedSummary) []rpc.JoinedSummary {
	wire := make([]rpc.JoinedSummary, len(summaries))
	for i, s := range summaries {
		wire[i] = rpc.JoinedSummary{
			Event:             toWireEvent(&s.Event),
			Participant:       toWireParticipant(&s.Participant),
			PaidCount:         s.PaidCount,
			OwesCount:         s.OwesCount,
			TotalParticipants: s.TotalParticipants,
		}
	}
	return wire
}
