package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPBackendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	// No cache client: every fetch goes straight to the test server.
	return NewHTTPBackendClient(srv.URL, 2*time.Second, nil, 0, zap.NewNop())
}

func TestGetBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/abc123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "abc123",
			"bookingId": "FXB-2025-0042",
			"user": {"id": "u1", "name": "Asha Nair", "email": "asha@example.com"},
			"pro": {"id": "p1", "firstName": "Ravi", "lastName": "Menon"},
			"category": {"id": "c1", "name": "Plumbing"},
			"preferredDate": "2025-06-01",
			"preferredTime": [{"startTime": "14:00", "endTime": "15:00", "booked": true}],
			"status": "completed"
		}`))
	})

	booking, err := client.GetBooking(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "FXB-2025-0042", booking.BookingID)
	assert.Equal(t, "Asha Nair", booking.User.Name)
	require.Len(t, booking.PreferredTime, 1)
	assert.Equal(t, "15:00", booking.PreferredTime[0].EndTime)
}

func TestGetQuota(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/abc123/quota", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "q1",
			"bookingId": "abc123",
			"laborCost": 500,
			"totalCost": 500,
			"paymentStatus": "pending"
		}`))
	})

	quota, err := client.GetQuota(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 500.0, quota.TotalCost)
	assert.Equal(t, "pending", string(quota.PaymentStatus))
}

func TestNotFoundMapsToTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetBooking(context.Background(), "missing")
	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "notFound", gwErr.Code)
}

func TestUpstreamFailureMapsToTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetQuota(context.Background(), "abc123")
	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "upstreamError", gwErr.Code)
}

func TestMalformedResponseMapsToTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.GetBooking(context.Background(), "abc123")
	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "upstreamError", gwErr.Code)
}
