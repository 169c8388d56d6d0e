package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Attempt is the stored state of one payment attempt. Attempts live in redis
// under a TTL so they share the lifetime the product gives local payment
// state: scoped to the viewing session, gone after the user walks away.
type Attempt struct {
	ID       string     `json:"id"`
	State    LocalState `json:"state"`
	IntentID string     `json:"intentId"`
}

// AttemptStore keeps per-booking payment attempts in redis.
type AttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAttemptStore(client *redis.Client, ttl time.Duration) *AttemptStore {
	return &AttemptStore{client: client, ttl: ttl}
}

func attemptKey(bookingID, attemptID string) string {
	return "payment:attempt:" + bookingID + ":" + attemptID
}

// Begin creates a new attempt in localPending and returns it.
func (s *AttemptStore) Begin(ctx context.Context, bookingID, intentID string) (*Attempt, error) {
	state, err := Transition(StateUnknown, EventBegin)
	if err != nil {
		return nil, err
	}
	attempt := &Attempt{
		ID:       uuid.New().String(),
		State:    state,
		IntentID: intentID,
	}
	if err := s.put(ctx, bookingID, attempt); err != nil {
		return nil, fmt.Errorf("failed to store payment attempt: %w", err)
	}
	return attempt, nil
}

// Get returns the attempt, or a zero-value attempt in StateUnknown when it
// does not exist or has expired.
func (s *AttemptStore) Get(ctx context.Context, bookingID, attemptID string) (*Attempt, error) {
	if attemptID == "" {
		return &Attempt{State: StateUnknown}, nil
	}
	data, err := s.client.Get(ctx, attemptKey(bookingID, attemptID)).Result()
	if err == redis.Nil {
		return &Attempt{ID: attemptID, State: StateUnknown}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payment attempt: %w", err)
	}
	var attempt Attempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, fmt.Errorf("failed to parse payment attempt: %w", err)
	}
	return &attempt, nil
}

// Resolve applies a confirmation outcome to a pending attempt.
func (s *AttemptStore) Resolve(ctx context.Context, bookingID, attemptID string, ev Event) (*Attempt, error) {
	attempt, err := s.Get(ctx, bookingID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.State == StateUnknown {
		return nil, NewAttemptNotFoundError("payment attempt " + attemptID + " not found or expired")
	}
	next, err := Transition(attempt.State, ev)
	if err != nil {
		return nil, err
	}
	attempt.State = next
	if err := s.put(ctx, bookingID, attempt); err != nil {
		return nil, fmt.Errorf("failed to update payment attempt: %w", err)
	}
	return attempt, nil
}

func (s *AttemptStore) put(ctx context.Context, bookingID string, attempt *Attempt) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, attemptKey(bookingID, attempt.ID), data, s.ttl).Err()
}
