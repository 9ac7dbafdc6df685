package ports

import (
	"context"

	"github.com/umesh576/servicehub-cli/internal/domain"
)

// AuthGateway talks to the backend's authentication endpoints.
type AuthGateway interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// ValidateToken asks the remote authority whether token is still good.
	// A rejection status maps to domain.ErrTokenRejected, an acceptance body
	// from which no identity can be extracted to domain.ErrMalformedResponse;
	// any other error is a transport failure.
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// ProfileGateway reads the profile fields the backend keeps next to the
// identity, including the linked booking id.
type ProfileGateway interface {
	FetchUserProfile(ctx context.Context, token string, userID int) (domain.UserProfile, error)
}
