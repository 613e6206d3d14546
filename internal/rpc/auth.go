package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// AuthServicePath is the route prefix for the auth service.
	AuthServicePath = "/vensoc.v1.AuthService/"

	AuthServiceRegisterProcedure = AuthServicePath + "Register"
	AuthServiceLoginProcedure    = AuthServicePath + "Login"
	AuthServiceLogoutProcedure   = AuthServicePath + "Logout"
)

// AuthServiceHandler is the server-side interface of the auth service.
type AuthServiceHandler interface {
	Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error)
}

// NewAuthServiceHandler builds an http.Handler for the auth service,
// returned with the path it must be mounted on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceLogoutProcedure, connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...))
	return AuthServicePath, mux
}

// AuthServiceClient calls the auth service over HTTP.
type AuthServiceClient struct {
	register *connect.Client[RegisterRequest, RegisterResponse]
	login    *connect.Client[LoginRequest, LoginResponse]
	logout   *connect.Client[LogoutRequest, LogoutResponse]
}

// NewAuthServiceClient creates a client for the auth service mounted at
// baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register: connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:    connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		logout:   connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}
