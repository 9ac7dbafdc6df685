package ports

import "context"

// CredentialStore owns the single opaque session token. Reading an absent
// slot reports absence, never an error; Clear on an empty slot is a no-op.
type CredentialStore interface {
	Get(ctx context.Context) (token string, ok bool)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
