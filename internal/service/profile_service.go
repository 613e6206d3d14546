package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/vensoc/vensoc/internal/middleware"
	"github.com/vensoc/vensoc/internal/models"
	"github.com/vensoc/vensoc/internal/rpc"
	"github.com/vensoc/vensoc/internal/storage"
	"github.com/vensoc/vensoc/internal/validation"
)

// ErrAuthRequired is returned when an operation needs a signed-in caller.
var ErrAuthRequired = errors.New("sign in to continue")

// ProfileService implements the Connect ProfileService: one Venmo payment
// handle per authenticated user, required before creating events.
type ProfileService struct {
	store storage.Store
}

// NewProfileService creates a new ProfileService with the given storage
// backend.
func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

// GetProfile returns the caller's organizer profile, or an empty response
// when none exists yet.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[rpc.GetProfileRequest]) (*connect.Response[rpc.GetProfileResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrAuthRequired)
	}

	slog.Info("GetProfile request", "user_id", userID)

	profile, err := s.store.GetOrganizerProfile(ctx, userID)
	if err != nil {
		slog.Error("GetProfile failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &rpc.GetProfileResponse{}
	if profile != nil {
		wire := toWireProfile(profile)
		resp.Profile = &wire
	}
	return connect.NewResponse(resp), nil
}

// UpsertProfile creates or replaces the caller's payment handle. The raw
// handle is normalized (trimmed, "@"s stripped, lowercased) and stored with
// a single leading "@".
func (s *ProfileService) UpsertProfile(ctx context.Context, req *connect.Request[rpc.UpsertProfileRequest]) (*connect.Response[rpc.UpsertProfileResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrAuthRequired)
	}

	slog.Info("UpsertProfile request", "user_id", userID)

	if msg := validation.ValidateVenmoUsername(req.Msg.VenmoUsername); msg != "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
	}

	normalized := validation.NormalizeVenmoUsername(req.Msg.VenmoUsername)
	profile := &models.OrganizerProfile{
		UserID:                  userID,
		VenmoUsername:           "@" + normalized,
		VenmoUsernameNormalized: normalized,
		UpdatedAt:               models.Now(),
	}

	if err := s.store.UpsertOrganizerProfile(ctx, profile); err != nil {
		slog.Error("UpsertProfile failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	// Re-read so the response carries the preserved created_at.
	stored, err := s.store.GetOrganizerProfile(ctx, userID)
	if err != nil || stored == nil {
		slog.Error("Failed to fetch upserted profile", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Profile upserted", "user_id", userID, "venmo_username", stored.VenmoUsername)
	return connect.NewResponse(&rpc.UpsertProfileResponse{
		Profile: toWireProfile(stored),
	}), nil
}
