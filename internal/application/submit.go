package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/umesh576/servicehub-cli/internal/domain"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

const (
	MissingIdentity = "resolved identity"
	MissingService  = "resolved service"
	MissingDraft    = "submittable booking form"
)

// Orchestrator owns one booking attempt end to end: resolve the entry
// resources, drive the form, submit, classify. It holds the only references
// to the session and the draft for the attempt's lifetime.
type Orchestrator struct {
	entry     EntryPoint
	resolver  *Resolver
	validator *SessionValidator
	booking   ports.BookingGateway
	form      *BookingForm

	session *Session
	service domain.ServiceListing
}

func NewOrchestrator(entry EntryPoint, resolver *Resolver, validator *SessionValidator, booking ports.BookingGateway, clock ports.Clock) *Orchestrator {
	return &Orchestrator{
		entry:     entry,
		resolver:  resolver,
		validator: validator,
		booking:   booking,
		form:      NewBookingForm(clock),
	}
}

func (o *Orchestrator) Form() *BookingForm {
	return o.form
}

func (o *Orchestrator) Session() *Session {
	return o.session
}

func (o *Orchestrator) Service() domain.ServiceListing {
	return o.service
}

// Begin resolves the session and the route-supplied service. It must
// succeed before Submit can do anything but block.
func (o *Orchestrator) Begin(ctx context.Context, routeServiceID int) error {
	entry, err := o.resolver.ResolveBookingEntry(ctx, routeServiceID)
	if err != nil {
		return err
	}

	o.session = entry.Session
	o.service = entry.Service
	return nil
}

// Adopt seeds the orchestrator with an already resolved session and service,
// for the entry shape where both were fetched by a prior chain.
func (o *Orchestrator) Adopt(session *Session, service domain.ServiceListing) {
	o.session = session
	o.service = service
}

// NewBookingRequest assembles the submission payload. It is the single
// construction site and refuses unresolved inputs.
func NewBookingRequest(identity domain.Identity, serviceID int, draft domain.BookingDraft) (domain.BookingRequestPayload, error) {
	if !identity.Resolved() {
		return domain.BookingRequestPayload{}, fmt.Errorf("identity is not resolved")
	}
	if serviceID <= 0 {
		return domain.BookingRequestPayload{}, fmt.Errorf("service id must be a positive integer, got %d", serviceID)
	}

	return domain.BookingRequestPayload{
		ServiceID: serviceID,
		UserID:    identity.ID,
		Time:      draft.CombinedTime(),
		Message:   strings.TrimSpace(draft.Message),
	}, nil
}

// Submit validates, guards against concurrent sends, posts the payload, and
// classifies the response. Every return path is an outcome or the in-flight
// sentinel; nothing here is fatal.
func (o *Orchestrator) Submit(ctx context.Context) (Outcome, error) {
	if !o.form.BeginSubmit() {
		return Outcome{}, domain.ErrSubmissionInFlight
	}
	defer o.form.EndSubmit()

	if blocked, ok := o.checkPreconditions(); !ok {
		return blocked, nil
	}

	payload, err := NewBookingRequest(o.session.Identity, o.service.ID, o.form.Draft())
	if err != nil {
		return Outcome{}, fmt.Errorf("assemble booking payload: %w", err)
	}

	result, err := o.booking.SubmitBooking(ctx, o.session.Token, payload)
	if err != nil {
		return ClassifyTransportFailure(), nil
	}

	outcome := Classify(o.entry, result.Status, result.Body)

	if outcome.ClearCredential {
		if destroyErr := o.validator.Destroy(ctx, o.session); destroyErr != nil {
			return Outcome{}, fmt.Errorf("destroy rejected session: %w", destroyErr)
		}
		o.session = nil
	}

	if outcome.Kind == OutcomeSuccess {
		o.form.Discard()
	}

	return outcome, nil
}

func (o *Orchestrator) checkPreconditions() (Outcome, bool) {
	if o.session == nil || !o.session.Identity.Resolved() {
		return blockedOutcome(MissingIdentity), false
	}
	if !o.service.Resolved() {
		return blockedOutcome(MissingService), false
	}
	if !o.form.Validate() {
		return blockedOutcome(MissingDraft), false
	}

	return Outcome{}, true
}

func blockedOutcome(missing string) Outcome {
	return Outcome{
		Kind:     OutcomeBlocked,
		Message:  fmt.Sprintf("cannot submit: missing %s", missing),
		Navigate: domain.NavigateNone(),
		Missing:  missing,
	}
}

