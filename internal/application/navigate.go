package application

import "github.com/umesh576/servicehub-cli/internal/domain"

// IntentForRejection maps a session rejection onto a navigation intent.
// Transient failures keep the user where they are; everything else sends
// them to login with the originating route preserved.
func IntentForRejection(reason domain.RejectReason, redirect string) domain.NavigationIntent {
	switch reason {
	case domain.RejectNoCredential, domain.RejectInvalidOrExpired:
		return domain.NavigateLogin(redirect)
	default:
		return domain.NavigateNone()
	}
}
