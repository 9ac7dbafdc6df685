package application

import (
	"context"
	"fmt"

	"github.com/umesh576/servicehub-cli/internal/domain"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

// Stage names one step of a resolver chain, for per-stage loading signals.
type Stage string

const (
	StageIdentity Stage = "identity"
	StageService  Stage = "service"
	StageProfile  Stage = "profile"
	StageBooking  Stage = "booking"
)

// StageObserver is notified when a chain step starts and finishes. It must
// not block; the resolver calls it from the fetching goroutine.
type StageObserver func(stage Stage, loading bool)

// Resolver drives the dependent remote fetches behind the booking and
// profile views. Sibling chains may run in parallel; steps inside one chain
// are strictly ordered, and a step never starts until its input key is a
// positive integer.
type Resolver struct {
	validator *SessionValidator
	catalog   ports.CatalogGateway
	booking   ports.BookingGateway
	profile   ports.ProfileGateway
	observe   StageObserver
}

func NewResolver(validator *SessionValidator, catalog ports.CatalogGateway, booking ports.BookingGateway, profile ports.ProfileGateway) *Resolver {
	return &Resolver{
		validator: validator,
		catalog:   catalog,
		booking:   booking,
		profile:   profile,
	}
}

// Observe registers a loading-signal observer for subsequent resolutions.
func (r *Resolver) Observe(fn StageObserver) {
	r.observe = fn
}

func (r *Resolver) signal(stage Stage, loading bool) {
	if r.observe != nil {
		r.observe(stage, loading)
	}
}

// BookingEntry is everything the booking form needs before submission.
type BookingEntry struct {
	Session *Session
	Service domain.ServiceListing
}

type sessionResult struct {
	session *Session
	err     error
}

type serviceResult struct {
	service domain.ServiceListing
	err     error
}

// ResolveBookingEntry validates the session and fetches the route-supplied
// service concurrently; neither depends on the other's key. A session
// rejection wins over a service fetch failure so the user sees one error.
func (r *Resolver) ResolveBookingEntry(ctx context.Context, routeServiceID int) (BookingEntry, error) {
	if routeServiceID <= 0 {
		return BookingEntry{}, fmt.Errorf("service id must be a positive integer, got %d", routeServiceID)
	}

	sessionCh := make(chan sessionResult, 1)
	serviceCh := make(chan serviceResult, 1)

	go func() {
		r.signal(StageIdentity, true)
		defer r.signal(StageIdentity, false)

		session, err := r.validator.Validate(ctx)
		sessionCh <- sessionResult{session: session, err: err}
	}()

	go func() {
		r.signal(StageService, true)
		defer r.signal(StageService, false)

		// The catalog endpoint accepts an absent bearer credential, so the
		// service fetch does not wait for validation.
		token, _ := r.validator.creds.Get(ctx)
		service, err := r.catalog.FetchService(ctx, token, routeServiceID)
		serviceCh <- serviceResult{service: service, err: err}
	}()

	var (
		session sessionResult
		service serviceResult
	)
	for i := 0; i < 2; i++ {
		select {
		case session = <-sessionCh:
			sessionCh = nil
		case service = <-serviceCh:
			serviceCh = nil
		case <-ctx.Done():
			return BookingEntry{}, ctx.Err()
		}
	}

	if session.err != nil {
		return BookingEntry{}, session.err
	}
	if service.err != nil {
		return BookingEntry{}, fmt.Errorf("fetch service %d: %w", routeServiceID, service.err)
	}

	return BookingEntry{Session: session.session, Service: service.service}, nil
}

// ProfileView is the profile page's resolved chain. Booking and Service are
// nil when the preceding key was zero, meaning "not linked yet" rather than
// a failure.
type ProfileView struct {
	User    domain.UserProfile
	Booking *domain.BookingRecord
	Service *domain.ServiceListing
}

// ResolveProfile walks user -> booking record -> service, short-circuiting
// quietly on a zero key and loudly on a genuine fetch failure.
func (r *Resolver) ResolveProfile(ctx context.Context, session *Session, userID int) (ProfileView, error) {
	if userID <= 0 {
		return ProfileView{}, fmt.Errorf("user id must be a positive integer, got %d", userID)
	}

	r.signal(StageProfile, true)
	user, err := r.profile.FetchUserProfile(ctx, session.Token, userID)
	r.signal(StageProfile, false)
	if err != nil {
		return ProfileView{}, fmt.Errorf("fetch user profile %d: %w", userID, err)
	}

	view := ProfileView{User: user}

	if user.BookServiceID <= 0 {
		return view, nil
	}

	r.signal(StageBooking, true)
	record, err := r.booking.FetchBookingRecord(ctx, session.Token, user.BookServiceID)
	r.signal(StageBooking, false)
	if err != nil {
		return ProfileView{}, fmt.Errorf("fetch booking record %d: %w", user.BookServiceID, err)
	}
	view.Booking = &record

	if record.ServiceID <= 0 {
		return view, nil
	}

	r.signal(StageService, true)
	service, err := r.catalog.FetchService(ctx, session.Token, record.ServiceID)
	r.signal(StageService, false)
	if err != nil {
		return ProfileView{}, fmt.Errorf("fetch service %d: %w", record.ServiceID, err)
	}
	view.Service = &service

	return view, nil
}
