package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/vensoc/vensoc/internal/auth"
	"github.com/vensoc/vensoc/internal/rpc"
	"github.com/vensoc/vensoc/internal/storage/sqlite"
)

// setupAuthTestServer creates a test server with just the AuthService.
func setupAuthTestServer(t *testing.T) *rpc.AuthServiceClient {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authSvc := NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, logger)

	path, handler := rpc.NewAuthServiceHandler(authSvc)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return rpc.NewAuthServiceClient(http.DefaultClient, server.URL)
}

func TestRegisterAndLogin(t *testing.T) {
	client := setupAuthTestServer(t)
	ctx := context.Background()

	registered, err := client.Register(ctx, connect.NewRequest(&rpc.RegisterRequest{
		Email:       "alex@example.com",
		DisplayName: "Alex",
		Password:    "hunter2hunter2",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if registered.Msg.Token == "" {
		t.Error("expected a session token")
	}
	if registered.Msg.User.Email != "alex@example.com" || registered.Msg.User.DisplayName != "Alex" {
		t.Errorf("unexpected user: %+v", registered.Msg.User)
	}

	loggedIn, err := client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{
		Email:    "alex@example.com",
		Password: "hunter2hunter2",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.Msg.User.ID != registered.Msg.User.ID {
		t.Error("login returned a different user")
	}
	if loggedIn.Msg.Token == "" {
		t.Error("expected a session token")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	client := setupAuthTestServer(t)
	ctx := context.Background()

	req := &rpc.RegisterRequest{
		Email:       "alex@example.com",
		DisplayName: "Alex",
		Password:    "hunter2hunter2",
	}
	if _, err := client.Register(ctx, connect.NewRequest(req)); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := client.Register(ctx, connect.NewRequest(req))
	if connect.CodeOf(err) != connect.CodeAlreadyExists {
		t.Errorf("expected CodeAlreadyExists, got %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	client := setupAuthTestServer(t)

	_, err := client.Register(context.Background(), connect.NewRequest(&rpc.RegisterRequest{
		Email:       "alex@example.com",
		DisplayName: "Alex",
		Password:    "short",
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected CodeInvalidArgument, got %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	client := setupAuthTestServer(t)
	ctx := context.Background()

	if _, err := client.Register(ctx, connect.NewRequest(&rpc.RegisterRequest{
		Email:       "alex@example.com",
		DisplayName: "Alex",
		Password:    "hunter2hunter2",
	})); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{
		Email:    "alex@example.com",
		Password: "not-the-password",
	}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected CodeUnauthenticated, got %v", err)
	}

	_, err = client.Login(ctx, connect.NewRequest(&rpc.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected CodeUnauthenticated for unknown email, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	client := setupAuthTestServer(t)

	if _, err := client.Logout(context.Background(), connect.NewRequest(&rpc.LogoutRequest{})); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}
