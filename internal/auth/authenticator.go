package auth

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Authenticator verifies who is calling so each ledger can be scoped to its owner.
// PasswordAuthenticator is the only implementation.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// Lookup returns a registered user by ID.
	Lookup(ctx context.Context, userID string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
