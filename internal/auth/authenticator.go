// Package auth owns gymparty accounts: credential checks at registration
// and login, and the bearer tokens that identify a caller afterwards.
package auth

import (
	"context"

	"github.com/mmynk/gymparty/internal/models"
)

// Authenticator creates and verifies accounts. Parties and attendance only
// ever see the user ID it returns.
type Authenticator interface {
	// Register creates an account. The email is normalised first; a second
	// account for the same address fails with ErrEmailExists.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account whose credential matches, or
	// ErrInvalidCredentials without revealing which part was wrong.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential rejects credentials too weak to register with.
	ValidateCredential(credential string) error
}
