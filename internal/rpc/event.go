package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// EventServicePath is the route prefix for the event service.
	EventServicePath = "/vensoc.v1.EventService/"

	EventServiceCreateEventProcedure          = EventServicePath + "CreateEvent"
	EventServiceGetEventProcedure             = EventServicePath + "GetEvent"
	EventServiceDeleteEventProcedure          = EventServicePath + "DeleteEvent"
	EventServiceJoinEventProcedure            = EventServicePath + "JoinEvent"
	EventServiceSetParticipantStatusProcedure = EventServicePath + "SetParticipantStatus"
	EventServiceListOrganizerEventsProcedure  = EventServicePath + "ListOrganizerEvents"
	EventServiceListJoinedEventsProcedure     = EventServicePath + "ListJoinedEvents"
	EventServiceGetShareMessageProcedure      = EventServicePath + "GetShareMessage"
)

// EventServiceHandler is the server-side interface of the event service.
type EventServiceHandler interface {
	CreateEvent(ctx context.Context, req *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error)
	GetEvent(ctx context.Context, req *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error)
	DeleteEvent(ctx context.Context, req *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error)
	JoinEvent(ctx context.Context, req *connect.Request[JoinEventRequest]) (*connect.Response[JoinEventResponse], error)
	SetParticipantStatus(ctx context.Context, req *connect.Request[SetParticipantStatusRequest]) (*connect.Response[SetParticipantStatusResponse], error)
	ListOrganizerEvents(ctx context.Context, req *connect.Request[ListOrganizerEventsRequest]) (*connect.Response[ListOrganizerEventsResponse], error)
	ListJoinedEvents(ctx context.Context, req *connect.Request[ListJoinedEventsRequest]) (*connect.Response[ListJoinedEventsResponse], error)
	GetShareMessage(ctx context.Context, req *connect.Request[GetShareMessageRequest]) (*connect.Response[GetShareMessageResponse], error)
}

// NewEventServiceHandler builds an http.Handler for the event service,
// returned with the path it must be mounted on.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(EventServiceCreateEventProcedure, connect.NewUnaryHandler(EventServiceCreateEventProcedure, svc.CreateEvent, opts...))
	mux.Handle(EventServiceGetEventProcedure, connect.NewUnaryHandler(EventServiceGetEventProcedure, svc.GetEvent, opts...))
	mux.Handle(EventServiceDeleteEventProcedure, connect.NewUnaryHandler(EventServiceDeleteEventProcedure, svc.DeleteEvent, opts...))
	mux.Handle(EventServiceJoinEventProcedure, connect.NewUnaryHandler(EventServiceJoinEventProcedure, svc.JoinEvent, opts...))
	mux.Handle(EventServiceSetParticipantStatusProcedure, connect.NewUnaryHandler(EventServiceSetParticipantStatusProcedure, svc.SetParticipantStatus, opts...))
	mux.Handle(EventServiceListOrganizerEventsProcedure, connect.NewUnaryHandler(EventServiceListOrganizerEventsProcedure, svc.ListOrganizerEvents, opts...))
	mux.Handle(EventServiceListJoinedEventsProcedure, connect.NewUnaryHandler(EventServiceListJoinedEventsProcedure, svc.ListJoinedEvents, opts...))
	mux.Handle(EventServiceGetShareMessageProcedure, connect.NewUnaryHandler(EventServiceGetShareMessageProcedure, svc.GetShareMessage, opts...))
	return EventServicePath, mux
}

// EventServiceClient calls the event service over HTTP.
type EventServiceClient struct {
	createEvent          *connect.Client[CreateEventRequest, CreateEventResponse]
	getEvent             *connect.Client[GetEventRequest, GetEventResponse]
	deleteEvent          *connect.Client[DeleteEventRequest, DeleteEventResponse]
	joinEvent            *connect.Client[JoinEventRequest, JoinEventResponse]
	setParticipantStatus *connect.Client[SetParticipantStatusRequest, SetParticipantStatusResponse]
	listOrganizerEvents  *connect.Client[ListOrganizerEventsRequest, ListOrganizerEventsResponse]
	listJoinedEvents     *connect.Client[ListJoinedEventsRequest, ListJoinedEventsResponse]
	getShareMessage      *connect.Client[GetShareMessageRequest, GetShareMessageResponse]
}

// NewEventServiceClient creates a client for the event service mounted at
// baseURL.
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *EventServiceClient {
	opts = clientOptions(opts)
	return &EventServiceClient{
		createEvent:          connect.NewClient[CreateEventRequest, CreateEventResponse](httpClient, baseURL+EventServiceCreateEventProcedure, opts...),
		getEvent:             connect.NewClient[GetEventRequest, GetEventResponse](httpClient, baseURL+EventServiceGetEventProcedure, opts...),
		deleteEvent:          connect.NewClient[DeleteEventRequest, DeleteEventResponse](httpClient, baseURL+EventServiceDeleteEventProcedure, opts...),
		joinEvent:            connect.NewClient[JoinEventRequest, JoinEventResponse](httpClient, baseURL+EventServiceJoinEventProcedure, opts...),
		setParticipantStatus: connect.NewClient[SetParticipantStatusRequest, SetParticipantStatusResponse](httpClient, baseURL+EventServiceSetParticipantStatusProcedure, opts...),
		listOrganizerEvents:  connect.NewClient[ListOrganizerEventsRequest, ListOrganizerEventsResponse](httpClient, baseURL+EventServiceListOrganizerEventsProcedure, opts...),
		listJoinedEvents:     connect.NewClient[ListJoinedEventsRequest, ListJoinedEventsResponse](httpClient, baseURL+EventServiceListJoinedEventsProcedure, opts...),
		getShareMessage:      connect.NewClient[GetShareMessageRequest, GetShareMessageResponse](httpClient, baseURL+EventServiceGetShareMessageProcedure, opts...),
	}
}

func (c *EventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) GetEvent(ctx context.Context, req *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) JoinEvent(ctx context.Context, req *connect.Request[JoinEventRequest]) (*connect.Response[JoinEventResponse], error) {
	return c.joinEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) SetParticipantStatus(ctx context.Context, req *connect.Request[SetParticipantStatusRequest]) (*connect.Response[SetParticipantStatusResponse], error) {
	return c.setParticipantStatus.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListOrganizerEvents(ctx context.Context, req *connect.Request[ListOrganizerEventsRequest]) (*connect.Response[ListOrganizerEventsResponse], error) {
	return c.listOrganizerEvents.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListJoinedEvents(ctx context.Context, req *connect.Request[ListJoinedEventsRequest]) (*connect.Response[ListJoinedEventsResponse], error) {
	return c.listJoinedEvents.CallUnary(ctx, req)
}

func (c *EventServiceClient) GetShareMessage(ctx context.Context, req *connect.Request[GetShareMessageRequest]) (*connect.Response[GetShareMessageResponse], error) {
	return c.getShareMessage.CallUnary(ctx, req)
}
