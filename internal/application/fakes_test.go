package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/umesh576/servicehub-cli/internal/domain"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

type fakeCredentialStore struct {
	mu     sync.Mutex
	token  string
	gets   int
	clears int
}

func newFakeCredentialStore(token string) *fakeCredentialStore {
	return &fakeCredentialStore{token: token}
}

func (s *fakeCredentialStore) Get(context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gets++
	return s.token, s.token != ""
}

func (s *fakeCredentialStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return nil
}

func (s *fakeCredentialStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.clears++
	return nil
}

func (s *fakeCredentialStore) clearCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clears
}

type fakeAuthGateway struct {
	identity domain.Identity
	err      error
	calls    atomic.Int32
}

func (g *fakeAuthGateway) Login(context.Context, string, string) (string, error) {
	return "", nil
}

func (g *fakeAuthGateway) ValidateToken(context.Context, string) (domain.Identity, error) {
	g.calls.Add(1)
	if g.err != nil {
		return domain.Identity{}, g.err
	}
	return g.identity, nil
}

type fakeCatalogGateway struct {
	service domain.ServiceListing
	err     error
	calls   atomic.Int32
}

func (g *fakeCatalogGateway) ListServices(context.Context) ([]domain.ServiceListing, error) {
	return nil, nil
}

func (g *fakeCatalogGateway) FetchService(context.Context, string, int) (domain.ServiceListing, error) {
	g.calls.Add(1)
	if g.err != nil {
		return domain.ServiceListing{}, g.err
	}
	return g.service, nil
}

type fakeBookingGateway struct {
	record  domain.BookingRecord
	result  ports.SubmitResult
	err     error
	delay   time.Duration
	fetches atomic.Int32
	submits atomic.Int32
}

func (g *fakeBookingGateway) FetchBookingRecord(context.Context, string, int) (domain.BookingRecord, error) {
	g.fetches.Add(1)
	if g.err != nil {
		return domain.BookingRecord{}, g.err
	}
	return g.record, nil
}

func (g *fakeBookingGateway) SubmitBooking(context.Context, string, domain.BookingRequestPayload) (ports.SubmitResult, error) {
	g.submits.Add(1)
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if g.err != nil {
		return ports.SubmitResult{}, g.err
	}
	return g.result, nil
}

type fakeProfileGateway struct {
	profile domain.UserProfile
	err     error
	calls   atomic.Int32
}

func (g *fakeProfileGateway) FetchUserProfile(context.Context, string, int) (domain.UserProfile, error) {
	g.calls.Add(1)
	if g.err != nil {
		return domain.UserProfile{}, g.err
	}
	return g.profile, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
