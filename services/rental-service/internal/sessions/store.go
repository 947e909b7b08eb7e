package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mehedi-hasan-dev/rentora/libs/runtime"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/selection"
)

const dateLayout = "2006-01-02"

// Store keeps per-session date selection snapshots in Redis so a visitor's
// in-progress range survives across requests. Snapshots are small and
// short-lived; a missing or corrupt entry just means the picker starts
// empty again.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(addr string, ttl time.Duration) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) ReadyCheck() runtime.ReadyCheck {
	return runtime.ReadyCheck{
		Name: "redis",
		Check: func(ctx context.Context) error {
			return s.client.Ping(ctx).Err()
		},
	}
}

type storedSnapshot struct {
	State     string `json:"state"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func key(sessionID, productID string) string {
	return "sel:" + sessionID + ":" + productID
}

// Get returns the stored snapshot for the session and product. A missing
// key is not an error; the zero snapshot means an empty selection.
func (s *Store) Get(ctx context.Context, sessionID, productID string) (selection.Snapshot, error) {
	raw, err := s.client.Get(ctx, key(sessionID, productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return selection.Snapshot{State: selection.StateEmpty}, nil
	}
	if err != nil {
		return selection.Snapshot{}, err
	}

	var stored storedSnapshot
	if err := json.Unmarshal(raw, &stored); err != nil {
		return selection.Snapshot{State: selection.StateEmpty}, nil
	}

	snap := selection.Snapshot{State: selection.State(stored.State)}
	if stored.StartDate != "" {
		if t, err := time.Parse(dateLayout, stored.StartDate); err == nil {
			snap.Start = t
		}
	}
	if stored.EndDate != "" {
		if t, err := time.Parse(dateLayout, stored.EndDate); err == nil {
			snap.End = t
		}
	}
	return snap, nil
}

func (s *Store) Put(ctx context.Context, sessionID, productID string, snap selection.Snapshot) error {
	stored := storedSnapshot{State: string(snap.State)}
	if !snap.Start.IsZero() {
		stored.StartDate = snap.Start.Format(dateLayout)
	}
	if !snap.End.IsZero() {
		stored.EndDate = snap.End.Format(dateLayout)
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(sessionID, productID), raw, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, sessionID, productID string) error {
	return s.client.Del(ctx, key(sessionID, productID)).Err()
}
