// Package middleware holds the Connect interceptors shared by every service:
// session auth, request logging, and RPC metrics.
package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/vensoc/vensoc/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for the authenticated user's email.
	EmailKey contextKey = "email"
	// DisplayNameKey is the context key for the authenticated user's
	// display name.
	DisplayNameKey contextKey = "display_name"
)

// GetUserID extracts the user ID from the context, or "" when the caller is
// anonymous.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context, or "".
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// GetDisplayName extracts the user's display name from the context, or "".
func GetDisplayName(ctx context.Context) string {
	name, _ := ctx.Value(DisplayNameKey).(string)
	return name
}

// RequireAuth returns an interceptor that rejects requests without a valid
// bearer token and enriches the context with the session's user identity.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			claims, err := claimsFromRequest(jwtManager, req)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(withClaims(ctx, claims), req)
		}
	}
}

// OptionalAuth returns an interceptor that enriches the context when a valid
// token is present but lets anonymous requests straight through. Endpoints
// with guest behavior (event detail, join, joined-events list) use this.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if claims, err := claimsFromRequest(jwtManager, req); err == nil {
				ctx = withClaims(ctx, claims)
			}
			return next(ctx, req)
		}
	}
}

func claimsFromRequest(jwtManager *auth.JWTManager, req connect.AnyRequest) (*auth.Claims, error) {
	authHeader := req.Header().Get("Authorization")
	if authHeader == "" {
		return nil, auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}

	return jwtManager.Validate(parts[1])
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return context.WithValue(ctx, DisplayNameKey, claims.DisplayName)
}
