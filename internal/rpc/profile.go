package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// ProfileServicePath is the route prefix for the profile service.
	ProfileServicePath = "/vensoc.v1.ProfileService/"

	ProfileServiceGetProfileProcedure    = ProfileServicePath + "GetProfile"
	ProfileServiceUpsertProfileProcedure = ProfileServicePath + "UpsertProfile"
)

// ProfileServiceHandler is the server-side interface of the profile service.
type ProfileServiceHandler interface {
	GetProfile(ctx context.Context, req *connect.Request[GetProfileRequest]) (*connect.Response[GetProfileResponse], error)
	UpsertProfile(ctx context.Context, req *connect.Request[UpsertProfileRequest]) (*connect.Response[UpsertProfileResponse], error)
}

// NewProfileServiceHandler builds an http.Handler for the profile service,
// returned with the path it must be mounted on.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(ProfileServiceGetProfileProcedure, connect.NewUnaryHandler(ProfileServiceGetProfileProcedure, svc.GetProfile, opts...))
	mux.Handle(ProfileServiceUpsertProfileProcedure, connect.NewUnaryHandler(ProfileServiceUpsertProfileProcedure, svc.UpsertProfile, opts...))
	return ProfileServicePath, mux
}

// ProfileServiceClient calls the profile service over HTTP.
type ProfileServiceClient struct {
	getProfile    *connect.Client[GetProfileRequest, GetProfileResponse]
	upsertProfile *connect.Client[UpsertProfileRequest, UpsertProfileResponse]
}

// NewProfileServiceClient creates a client for the profile service mounted
// at baseURL.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProfileServiceClient {
	opts = clientOptions(opts)
	return &ProfileServiceClient{
		getProfile:    connect.NewClient[GetProfileRequest, GetProfileResponse](httpClient, baseURL+ProfileServiceGetProfileProcedure, opts...),
		upsertProfile: connect.NewClient[UpsertProfileRequest, UpsertProfileResponse](httpClient, baseURL+ProfileServiceUpsertProfileProcedure, opts...),
	}
}

func (c *ProfileServiceClient) GetProfile(ctx context.Context, req *connect.Request[GetProfileRequest]) (*connect.Response[GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) UpsertProfile(ctx context.Context, req *connect.Request[UpsertProfileRequest]) (*connect.Response[UpsertProfileResponse], error) {
	return c.upsertProfile.CallUnary(ctx, req)
}
