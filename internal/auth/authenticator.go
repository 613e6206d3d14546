// Package auth implements account registration, login, and session tokens.
// Organizers must authenticate; participants may stay anonymous and are
// handled by the identity package instead.
package auth

import (
	"context"

	"github.com/vensoc/vensoc/internal/models"
)

// Authenticator is the pluggable credential check behind the auth service.
// Password auth is the only implementation today; the interface keeps the
// service layer ignorant of the mechanism (OAuth, passkeys) either way.
type Authenticator interface {
	// Register creates a new account. The credential format depends on the
	// implementation (a password here).
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential against the implementation's
	// requirements before any storage work happens.
	ValidateCredential(credential string) error
}
