package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umesh576/servicehub-cli/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL, server.Client(), zerolog.Nop())
}

func TestLogin(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var decoded map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decoded))
		assert.Equal(t, "asha@example.com", decoded["email"])
		assert.Equal(t, "hunter2", decoded["password"])

		_, _ = w.Write([]byte(`{"token":"tok-abc"}`))
	})

	token, err := client.Login(context.Background(), "asha@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestLoginRejectedCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	})

	_, err := client.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestLoginMissingToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Login(context.Background(), "asha@example.com", "hunter2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestValidateTokenTopLevelIdentity(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/validate", r.URL.Path)
		assert.Equal(t, "tok-abc", r.URL.Query().Get("token"))
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id":7,"name":"Asha","role":"customer"}`))
	})

	identity, err := client.ValidateToken(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, 7, identity.ID)
	assert.Equal(t, "Asha", identity.Name)
	assert.Equal(t, domain.RoleCustomer, identity.Role)
}

func TestValidateTokenNestedIdentity(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":7,"name":"Asha","role":"PROVIDER"}}`))
	})

	identity, err := client.ValidateToken(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, 7, identity.ID)
	assert.Equal(t, domain.RoleProvider, identity.Role)
}

func TestValidateTokenRejectedStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ValidateToken(context.Background(), "tok-stale")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTokenRejected)
	}
}

func TestValidateTokenMalformedBody(t *testing.T) {
	t.Parallel()

	bodies := []string{`not json`, `{"id":0,"name":""}`, `{"user":{"id":0}}`}
	for _, body := range bodies {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		_, err := client.ValidateToken(context.Background(), "tok-abc")
		require.Error(t, err, body)
		assert.ErrorIs(t, err, domain.ErrMalformedResponse, body)
	}
}

func TestListServices(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id":42,"serviceName":"Deep Clean","price":1499.5,"imageUrl":"http://img/42.png",
			 "location":{"locationName":"Thamel","city":"Kathmandu"},"rating":4.5,"bookingCount":12}
		]`))
	})

	listings, err := client.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, 42, listings[0].ID)
	assert.Equal(t, "Deep Clean", listings[0].Name)
	assert.Equal(t, 1499.5, listings[0].Price)
	assert.Equal(t, "Thamel", listings[0].Location.Name)
	assert.Equal(t, "Kathmandu", listings[0].Location.City)
	assert.Equal(t, 12, listings[0].BookingCount)
}

func TestFetchService(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services/42", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id":42,"serviceName":"Deep Clean","price":1499}`))
	})

	service, err := client.FetchService(context.Background(), "tok-abc", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, service.ID)
	assert.Equal(t, "Deep Clean", service.Name)
}

func TestFetchServiceNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchService(context.Background(), "", 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchUserProfile(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/searchuser/7", r.URL.Path)

		_, _ = w.Write([]byte(`{"id":7,"name":"Asha","email":"asha@example.com","role":"customer","bookServiceId":11}`))
	})

	profile, err := client.FetchUserProfile(context.Background(), "tok-abc", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, domain.RoleCustomer, profile.Role)
	assert.Equal(t, 11, profile.BookServiceID)
}

func TestFetchUserProfileNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchUserProfile(context.Background(), "tok-abc", 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchBookingRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookservices/11", r.URL.Path)

		_, _ = w.Write([]byte(`{"id":11,"serviceId":42,"status":"Waiting for approval","bookingDate":"2026-03-15 10:00:00","price":1499}`))
	})

	record, err := client.FetchBookingRecord(context.Background(), "tok-abc", 11)
	require.NoError(t, err)
	assert.Equal(t, 11, record.ID)
	assert.Equal(t, 42, record.ServiceID)
	assert.Equal(t, domain.BookingPending, record.Status)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), record.BookingDate)
}

func TestSubmitBookingReturnsRawStatusAndBody(t *testing.T) {
	t.Parallel()

	payload := domain.BookingRequestPayload{ServiceID: 42, UserID: 7, Time: "2026-03-15 10:00 AM", Message: "Need a full clean"}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookservices/book", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		var decoded map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decoded))
		assert.Equal(t, float64(42), decoded["serviceId"])
		assert.Equal(t, float64(7), decoded["userId"])
		assert.Equal(t, "2026-03-15 10:00 AM", decoded["time"])
		assert.Equal(t, "Need a full clean", decoded["message"])

		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"You already have a booking for this service"}`))
	})

	result, err := client.SubmitBooking(context.Background(), "tok-abc", payload)
	require.NoError(t, err, "backend rejections are results, not errors")
	assert.Equal(t, http.StatusConflict, result.Status)
	assert.Contains(t, string(result.Body), "already have a booking")
}

func TestSubmitBookingTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil, zerolog.Nop())
	_, err := client.SubmitBooking(context.Background(), "tok-abc", domain.BookingRequestPayload{ServiceID: 1, UserID: 1})
	require.Error(t, err)
}

func TestParseBookingDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), parseBookingDate("2026-03-15T10:00:00Z"))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parseBookingDate("2026-03-15"))
	assert.True(t, parseBookingDate("15/03/2026").IsZero())
	assert.True(t, parseBookingDate("").IsZero())
}
