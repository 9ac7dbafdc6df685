package application

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/umesh576/servicehub-cli/internal/domain"
)

// EntryPoint distinguishes the two booking entry shapes. They share the
// resolver, form, and submission machinery; only duplicate-booking handling
// and the post-success route differ.
type EntryPoint string

const (
	// EntryRoute is booking keyed directly by a route-supplied service id.
	EntryRoute EntryPoint = "route"
	// EntryResolved is booking reached from an already resolved profile.
	EntryResolved EntryPoint = "resolved"
)

type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeBlocked        OutcomeKind = "blocked"
	OutcomeInvalidData    OutcomeKind = "invalid_data"
	OutcomeIdentityStale  OutcomeKind = "identity_stale"
	OutcomeServiceMissing OutcomeKind = "service_missing"
	OutcomeRejected       OutcomeKind = "rejected"
	OutcomeSessionExpired OutcomeKind = "session_expired"
	OutcomeDuplicate      OutcomeKind = "duplicate"
	OutcomeServerError    OutcomeKind = "server_error"
	OutcomeTransport      OutcomeKind = "transport_failure"
)

// SuccessNavigateDelay is how long the surface lingers on the success
// message before following the navigation intent.
const SuccessNavigateDelay = 2 * time.Second

// Outcome is one member of the closed result set of a submission attempt.
type Outcome struct {
	Kind            OutcomeKind
	Message         string
	Navigate        domain.NavigationIntent
	ClearCredential bool
	// Missing names the violated precondition for OutcomeBlocked.
	Missing string
}

const (
	msgSuccess        = "Booking request submitted successfully."
	msgGenericFailure = "Failed to book service"
	msgInvalidData    = "Invalid booking data. Please try again."
	msgUserNotFound   = "User account not found. Please login again."
	msgServiceGone    = "Service not found. Please select a different service."
	msgSessionExpired = "Session expired. Please login again."
	msgDuplicate      = "You already have a booking for this service"
	msgServerError    = "Server error. Please try again later."
)

// badRequestRules is the explicit substring table refining 400 bodies.
// Rules are checked in order; the first match wins.
var badRequestRules = []struct {
	substring string
	kind      OutcomeKind
	message   string
	toLogin   bool
}{
	{substring: "User Id is required", kind: OutcomeInvalidData, message: msgInvalidData},
	{substring: "Service Id is required", kind: OutcomeInvalidData, message: msgInvalidData},
	{substring: "User not found", kind: OutcomeIdentityStale, message: msgUserNotFound, toLogin: true},
	{substring: "Service not found", kind: OutcomeServiceMissing, message: msgServiceGone},
}

// ExtractMessage pulls a human-readable message out of a response body that
// may be JSON, plain text, or empty. It is total: a parse failure degrades
// to the raw text, never to an error.
func ExtractMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	if !gjson.ValidBytes(body) {
		return raw
	}

	parsed := gjson.ParseBytes(body)
	if parsed.Type == gjson.String {
		return strings.TrimSpace(parsed.String())
	}

	if msg := parsed.Get("message"); msg.Exists() {
		return strings.TrimSpace(msg.String())
	}
	if msg := parsed.Get("error"); msg.Exists() {
		return strings.TrimSpace(msg.String())
	}

	return ""
}

// Classify maps an HTTP submission response onto an outcome. It is a pure
// function of (entry, status, body) so it can be exercised without a live
// backend.
func Classify(entry EntryPoint, status int, body []byte) Outcome {
	if status >= 200 && status < 300 {
		return successOutcome(entry)
	}

	message := ExtractMessage(body)

	switch {
	case status == 400:
		return classifyBadRequest(message)
	case status == 401:
		return Outcome{
			Kind:            OutcomeSessionExpired,
			Message:         msgSessionExpired,
			Navigate:        domain.NavigateLogin(""),
			ClearCredential: true,
		}
	case status == 409 && entry == EntryRoute:
		return Outcome{Kind: OutcomeDuplicate, Message: msgDuplicate, Navigate: domain.NavigateNone()}
	case status >= 500:
		return Outcome{Kind: OutcomeServerError, Message: msgServerError, Navigate: domain.NavigateNone()}
	}

	if message == "" {
		message = msgGenericFailure
	}

	return Outcome{Kind: OutcomeRejected, Message: message, Navigate: domain.NavigateNone()}
}

// ClassifyTransportFailure covers the no-response-at-all case: a retryable
// message, no navigation, nothing destroyed.
func ClassifyTransportFailure() Outcome {
	return Outcome{Kind: OutcomeTransport, Message: msgGenericFailure, Navigate: domain.NavigateNone()}
}

func successOutcome(entry EntryPoint) Outcome {
	navigate := domain.NavigateHome()
	if entry == EntryRoute {
		navigate = domain.NavigateMyBookings()
	}

	return Outcome{Kind: OutcomeSuccess, Message: msgSuccess, Navigate: navigate}
}

func classifyBadRequest(message string) Outcome {
	for _, rule := range badRequestRules {
		if !strings.Contains(message, rule.substring) {
			continue
		}

		navigate := domain.NavigateNone()
		if rule.toLogin {
			navigate = domain.NavigateLogin("")
		}

		return Outcome{Kind: rule.kind, Message: rule.message, Navigate: navigate}
	}

	if message == "" {
		message = msgGenericFailure
	}

	return Outcome{Kind: OutcomeRejected, Message: message, Navigate: domain.NavigateNone()}
}
