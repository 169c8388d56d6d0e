// Package gateway reads booking and quota snapshots from the Fixeify booking
// backend. The backend owns all persistence and lifecycle; everything here is
// read-only.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fixeify/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GatewayError carries a machine-readable code so handlers can map backend
// failures to status codes.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &GatewayError{Code: "notFound", Message: msg}
}

func NewUpstreamError(msg string) error {
	return &GatewayError{Code: "upstreamError", Message: msg}
}

// BackendClient fetches read-only snapshots from the booking backend.
type BackendClient interface {
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetQuota(ctx context.Context, bookingID string) (*models.Quota, error)
}

// HTTPBackendClient is the default BackendClient: plain REST calls fronted by
// a short-TTL redis cache so a booking-detail view re-rendering does not
// hammer the backend.
type HTTPBackendClient struct {
	BaseURL  string
	Client   *http.Client
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func NewHTTPBackendClient(baseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *HTTPBackendClient {
	return &HTTPBackendClient{
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: timeout},
		Cache:    cache,
		CacheTTL: cacheTTL,
		Logger:   logger,
	}
}

// GetBooking returns the booking snapshot for the given backend ID.
func (c *HTTPBackendClient) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.fetch(ctx, "/bookings/"+id, "snapshot:booking:"+id, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetQuota returns the quota filed for the given booking.
func (c *HTTPBackendClient) GetQuota(ctx context.Context, bookingID string) (*models.Quota, error) {
	var quota models.Quota
	if err := c.fetch(ctx, "/bookings/"+bookingID+"/quota", "snapshot:quota:"+bookingID, &quota); err != nil {
		return nil, err
	}
	return &quota, nil
}

// fetch resolves a snapshot from cache first, then the backend. Cache errors
// are logged and treated as misses; the backend is the source of truth.
func (c *HTTPBackendClient) fetch(ctx context.Context, path, cacheKey string, out interface{}) error {
	if c.Cache != nil {
		cached, err := c.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			if jsonErr := json.Unmarshal([]byte(cached), out); jsonErr == nil {
				return nil
			}
			// Unreadable cache entry; fall through to the backend.
			_ = c.Cache.Del(ctx, cacheKey).Err()
		} else if err != redis.Nil {
			c.Logger.Warn("Snapshot cache read failed, falling back to backend",
				zap.String("key", cacheKey), zap.Error(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return NewUpstreamError(fmt.Sprintf("failed to build backend request: %v", err))
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return NewUpstreamError(fmt.Sprintf("backend request failed: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFoundError("no resource at " + path)
	case resp.StatusCode != http.StatusOK:
		return NewUpstreamError(fmt.Sprintf("backend returned %d for %s", resp.StatusCode, path))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewUpstreamError(fmt.Sprintf("failed to decode backend response: %v", err))
	}

	if c.Cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if err := c.Cache.Set(ctx, cacheKey, data, c.CacheTTL).Err(); err != nil {
				c.Logger.Warn("Snapshot cache write failed",
					zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return nil
}
