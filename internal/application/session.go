package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umesh576/servicehub-cli/internal/domain"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

// Session is the explicit per-attempt session context: created when the
// remote authority accepts the stored token, destroyed on logout or on a
// 401-class rejection. The identity is never held apart from its token.
type Session struct {
	Token         string
	Identity      domain.Identity
	EstablishedAt time.Time
}

type SessionValidator struct {
	creds ports.CredentialStore
	auth  ports.AuthGateway
	clock ports.Clock
}

func NewSessionValidator(creds ports.CredentialStore, auth ports.AuthGateway, clock ports.Clock) *SessionValidator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionValidator{
		creds: creds,
		auth:  auth,
		clock: clock,
	}
}

// Validate checks the stored token against the remote authority. An absent
// token short-circuits without a network call. A rejection status clears the
// credential; a transport failure leaves it untouched so a transient outage
// never logs the user out. Safe to repeat; no retry policy of its own.
func (v *SessionValidator) Validate(ctx context.Context) (*Session, error) {
	token, ok := v.creds.Get(ctx)
	if !ok {
		return nil, &domain.SessionRejected{Reason: domain.RejectNoCredential}
	}

	identity, err := v.auth.ValidateToken(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenRejected):
			if clearErr := v.creds.Clear(ctx); clearErr != nil {
				return nil, fmt.Errorf("clear rejected credential: %w", errors.Join(err, clearErr))
			}
			return nil, &domain.SessionRejected{Reason: domain.RejectInvalidOrExpired, Err: err}
		case errors.Is(err, domain.ErrMalformedResponse):
			return nil, &domain.SessionRejected{Reason: domain.RejectMalformedResponse, Err: err}
		default:
			return nil, &domain.SessionRejected{Reason: domain.RejectNetworkError, Err: err}
		}
	}

	return &Session{
		Token:         token,
		Identity:      identity,
		EstablishedAt: v.clock.Now(),
	}, nil
}

// Destroy ends the session and removes its credential.
func (v *SessionValidator) Destroy(ctx context.Context, session *Session) error {
	if session != nil {
		session.Token = ""
		session.Identity = domain.Identity{}
	}

	if err := v.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}

	return nil
}
