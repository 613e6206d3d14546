package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"connectrpc.com/connect"

	"github.com/vensoc/vensoc/internal/identity"
	"github.com/vensoc/vensoc/internal/middleware"
	"github.com/vensoc/vensoc/internal/models"
	"github.com/vensoc/vensoc/internal/rpc"
	"github.com/vensoc/vensoc/internal/share"
	"github.com/vensoc/vensoc/internal/storage"
	"github.com/vensoc/vensoc/internal/summary"
	"github.com/vensoc/vensoc/internal/validation"
	"github.com/vensoc/vensoc/internal/venmo"
)

var (
	// ErrEventNotFound is returned when the referenced event is absent or
	// was deleted.
	ErrEventNotFound = errors.New("event not found")

	// ErrParticipantNotFound is returned when the referenced participant is
	// absent or belongs to a different event.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadyJoined is returned when the caller's identity already
	// resolves to a participant of the event. Not retryable without
	// changing identity.
	ErrAlreadyJoined = errors.New("you have already joined this event")

	// ErrProfileRequired is returned when an event is created before the
	// organizer has a payment handle.
	ErrProfileRequired = errors.New("add your Venmo username before creating an event")

	// ErrNotOrganizer is returned when a caller other than the event's
	// organizer attempts an organizer-only operation.
	ErrNotOrganizer = errors.New("only the event organizer can do this")
)

// EventService implements the Connect EventService: event lifecycle, joins,
// status transitions, and the summary views.
type EventService struct {
	store storage.Store
}

// NewEventService creates a new EventService with the given storage backend.
func NewEventService(store storage.Store) *EventService {
	return &EventService{store: store}
}

// CreateEvent validates the form, requires an organizer profile, and
// persists the event with the profile's handle denormalized onto it.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[rpc.CreateEventRequest]) (*connect.Response[rpc.CreateEventResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrAuthRequired)
	}

	slog.Info("CreateEvent request", "user_id", userID, "name", req.Msg.Name)

	result := validation.ValidateEventForm(validation.EventForm{
		EventName: req.Msg.Name,
		Amount:    req.Msg.Amount,
	})
	if !result.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fieldError(result.FieldErrors))
	}

	profile, err := s.store.GetOrganizerProfile(ctx, userID)
	if err != nil {
		slog.Error("CreateEvent failed - profile lookup", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if profile == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrProfileRequired)
	}

	event, err := models.NewEvent("", req.Msg.Name, result.ParsedAmount, userID, profile.VenmoUsername)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("CreateEvent failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Event created", "event_id", event.ID, "user_id", userID)
	return connect.NewResponse(&rpc.CreateEventResponse{Event: toWireEvent(event)}), nil
}

// GetEvent returns the event detail view: participants in join order,
// aggregate counts, the caller's resolved participant row, and the share
// artifacts.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[rpc.GetEventRequest]) (*connect.Response[rpc.GetEventResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("GetEvent request", "event_id", req.Msg.EventID, "user_id", userID)

	event, participants, err := s.fetchEventWithParticipants(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	stats := summary.Aggregate(participants)
	resp := &rpc.GetEventResponse{
		Event:        toWireEvent(event),
		Participants: toWireParticipants(participants),
		PaidCount:    stats.PaidCount,
		OwesCount:    stats.OwesCount,
		IsComplete:   stats.IsComplete,
		IsOrganizer:  userID != "" && event.OrganizerUserID == userID,
		ShareMessage: share.FormatMessage(*event, participants),
		PayLink:      venmo.BuildPayLink(event.OrganizerVenmoUsername, event.Amount, event.Name),
	}

	if current := identity.ResolveCurrentParticipant(participants, userID, req.Msg.GuestIdentityKey); current != nil {
		wire := toWireParticipant(current)
		resp.CurrentParticipant = &wire
	}

	return connect.NewResponse(resp), nil
}

// DeleteEvent removes an organizer's event; participants cascade with it.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[rpc.DeleteEventRequest]) (*connect.Response[rpc.DeleteEventResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrAuthRequired)
	}

	slog.Info("DeleteEvent request", "event_id", req.Msg.EventID, "user_id", userID)

	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerUserID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, ErrNotOrganizer)
	}

	if err := s.store.DeleteEvent(ctx, req.Msg.EventID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, ErrEventNotFound)
		}
		slog.Error("DeleteEvent failed", "event_id", req.Msg.EventID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Event deleted", "event_id", req.Msg.EventID, "user_id", userID)
	return connect.NewResponse(&rpc.DeleteEventResponse{}), nil
}

// JoinEvent adds the caller as an OWES participant. The already-joined check
// is advisory: without a storage uniqueness constraint, two concurrent joins
// from the same identity can both pass it. Duplicate rows degrade
// gracefully because the resolver always picks one canonical row.
func (s *EventService) JoinEvent(ctx context.Context, req *connect.Request[rpc.JoinEventRequest]) (*connect.Response[rpc.JoinEventResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("JoinEvent request", "event_id", req.Msg.EventID, "user_id", userID)

	name := req.Msg.Name
	if strings.TrimSpace(name) == "" {
		name = middleware.GetDisplayName(ctx)
	}
	if msg := validation.ValidateParticipantName(name); msg != "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
	}

	event, participants, err := s.fetchEventWithParticipants(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	if identity.ResolveCurrentParticipant(participants, userID, req.Msg.GuestIdentityKey) != nil {
		return nil, connect.NewError(connect.CodeAlreadyExists, ErrAlreadyJoined)
	}

	participant, err := models.NewParticipant(event.ID, name, userID, req.Msg.GuestIdentityKey)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		slog.Error("JoinEvent failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Participant joined", "event_id", event.ID, "participant_id", participant.ID)
	return connect.NewResponse(&rpc.JoinEventResponse{Participant: toWireParticipant(participant)}), nil
}

// SetParticipantStatus toggles a participant between OWES and PAID. Only the
// event's organizer may call it; the check lives here, not in the UI.
// Transitions are free in both directions: marking paid is a manual
// assertion, never a settlement with the payment provider.
func (s *EventService) SetParticipantStatus(ctx context.Context, req *connect.Request[rpc.SetParticipantStatusRequest]) (*connect.Response[rpc.SetParticipantStatusResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrAuthRequired)
	}

	slog.Info("SetParticipantStatus request",
		"event_id", req.Msg.EventID,
		"participant_id", req.Msg.ParticipantID,
		"status", req.Msg.Status,
		"user_id", userID,
	)

	status, err := models.ParseStatus(req.Msg.Status)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerUserID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, ErrNotOrganizer)
	}

	participant, err := s.store.GetParticipant(ctx, req.Msg.ParticipantID)
	if err != nil {
		slog.Error("SetParticipantStatus failed - lookup", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if participant == nil || participant.EventID != event.ID {
		return nil, connect.NewError(connect.CodeNotFound, ErrParticipantNotFound)
	}

	markedPaidAt := ""
	if status == models.StatusPaid {
		markedPaidAt = models.Now()
	}

	if err := s.store.UpdateParticipantStatus(ctx, participant.ID, status, markedPaidAt, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, ErrParticipantNotFound)
		}
		slog.Error("SetParticipantStatus failed", "participant_id", participant.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	participant.Status = status
	participant.MarkedPaidAt = markedPaidAt
	participant.StatusChangedByUserID = userID

	slog.Info("Participant status changed",
		"event_id", event.ID,
		"participant_id", participant.ID,
		"status", status,
	)
	return connect.NewResponse(&rpc.SetParticipantStatusResponse{Participant: toWireParticipant(participant)}), nil
}

// ListOrganizerEvents returns the caller's event history, most recent event
// first, each with its participants and aggregate counts.
func (s *EventService) ListOrganizerEvents(ctx context.Context, req *connect.Request[rpc.ListOrganizerEventsRequest]) (*connect.Response[rpc.ListOrganizerEventsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrAuthRequired)
	}

	slog.Info("ListOrganizerEvents request", "user_id", userID)

	events, err := s.store.ListEventsByOrganizer(ctx, userID)
	if err != nil {
		slog.Error("ListOrganizerEvents failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	eventIDs := make([]string, len(events))
	for i, event := range events {
		eventIDs[i] = event.ID
	}

	participants, err := s.store.ListParticipantsByEvents(ctx, eventIDs)
	if err != nil {
		slog.Error("ListOrganizerEvents failed - participants", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	summaries := summary.BuildOrganizerSummaries(events, participants)
	slog.Info("ListOrganizerEvents ok", "user_id", userID, "count", len(summaries))
	return connect.NewResponse(&rpc.ListOrganizerEventsResponse{
		Summaries: toWireOrganizerSummaries(summaries),
	}), nil
}

// ListJoinedEvents returns the events the caller has joined, most recently
// joined first. A caller with neither an authenticated id nor a guest key
// gets an empty list without any storage reads.
func (s *EventService) ListJoinedEvents(ctx context.Context, req *connect.Request[rpc.ListJoinedEventsRequest]) (*connect.Response[rpc.ListJoinedEventsResponse], error) {
	userID := middleware.GetUserID(ctx)
	guestKey := req.Msg.GuestIdentityKey
	slog.Info("ListJoinedEvents request", "user_id", userID)

	if userID == "" && guestKey == "" {
		return connect.NewResponse(&rpc.ListJoinedEventsResponse{}), nil
	}

	callerRows, err := s.store.ListParticipantsByIdentity(ctx, userID, guestKey)
	if err != nil {
		slog.Error("ListJoinedEvents failed - identity rows", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if len(callerRows) == 0 {
		return connect.NewResponse(&rpc.ListJoinedEventsResponse{}), nil
	}

	eventIDs := distinctEventIDs(callerRows)
	events, err := s.store.ListEventsByIDs(ctx, eventIDs)
	if err != nil {
		slog.Error("ListJoinedEvents failed - events", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	allParticipants, err := s.store.ListParticipantsByEvents(ctx, eventIDs)
	if err != nil {
		slog.Error("ListJoinedEvents failed - participants", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	summaries := summary.BuildJoinedSummaries(callerRows, events, allParticipants)
	slog.Info("ListJoinedEvents ok", "user_id", userID, "count", len(summaries))
	return connect.NewResponse(&rpc.ListJoinedEventsResponse{
		Summaries: toWireJoinedSummaries(summaries),
	}), nil
}

// GetShareMessage returns the copyable status message and pay link for an
// event.
func (s *EventService) GetShareMessage(ctx context.Context, req *connect.Request[rpc.GetShareMessageRequest]) (*connect.Response[rpc.GetShareMessageResponse], error) {
	slog.Info("GetShareMessage request", "event_id", req.Msg.EventID)

	event, participants, err := s.fetchEventWithParticipants(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&rpc.GetShareMessageResponse{
		Message: share.FormatMessage(*event, participants),
		PayLink: venmo.BuildPayLink(event.OrganizerVenmoUsername, event.Amount, event.Name),
	}), nil
}

func (s *EventService) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		slog.Error("Event lookup failed", "event_id", eventID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if event == nil {
		return nil, connect.NewError(connect.CodeNotFound, ErrEventNotFound)
	}
	return event, nil
}

func (s *EventService) fetchEventWithParticipants(ctx context.Context, eventID string) (*models.Event, []models.Participant, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	participants, err := s.store.ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		slog.Error("Participant list failed", "event_id", eventID, "error", err)
		return nil, nil, connect.NewError(connect.CodeInternal, err)
	}
	return event, participants, nil
}

// distinctEventIDs returns the event ids of rows in first-seen order.
func distinctEventIDs(rows []models.Participant) []string {
	seen := make(map[string]bool, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if !seen[row.EventID] {
			seen[row.EventID] = true
			ids = append(ids, row.EventID)
		}
	}
	return ids
}

// fieldError flattens field-scoped validation messages into one error,
// fields in stable order.
func fieldError(fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, fields[name])
	}
	return errors.New(strings.Join(parts, " "))
}
