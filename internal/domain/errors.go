package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTokenRejected      = errors.New("token rejected by authority")
	ErrMalformedResponse  = errors.New("malformed response body")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrNotFound           = errors.New("resource not found")
)

type RejectReason string

const (
	RejectNoCredential      RejectReason = "no_credential"
	RejectInvalidOrExpired  RejectReason = "invalid_or_expired"
	RejectNetworkError      RejectReason = "network_error"
	RejectMalformedResponse RejectReason = "malformed_response"
)

// SessionRejected explains why a session could not be established. A
// NetworkError rejection is transient and never invalidates the stored token.
type SessionRejected struct {
	Reason RejectReason
	Err    error
}

func (r *SessionRejected) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("session rejected (%s): %v", r.Reason, r.Err)
	}
	return fmt.Sprintf("session rejected (%s)", r.Reason)
}

func (r *SessionRejected) Unwrap() error {
	return r.Err
}

// RejectionReason extracts the rejection reason from err, if it carries one.
func RejectionReason(err error) (RejectReason, bool) {
	var rejected *SessionRejected
	if errors.As(err, &rejected) {
		return rejected.Reason, true
	}
	return "", false
}
