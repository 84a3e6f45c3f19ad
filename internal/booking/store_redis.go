package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"railbook/internal/booking/domain"
	"railbook/pkg/sentinel"
)

var draftLoadDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "railbook_draft_load_duration_ms",
	Help:    "Latency of draft loads from Redis in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const (
	// Redis key prefix for session drafts
	draftKeyPrefix = "booking:draft:"
)

// RedisStore is a Redis-backed session draft store. This is the recommended
// backend when multiple instances serve the same sessions.
//
// Drafts are stored JSON-encoded under one key per session, so each Save
// replaces the draft wholesale and reads never observe a torn draft. The TTL
// is refreshed on every Save; an idle session's draft expires with it.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisStoreOption configures a RedisStore instance.
type RedisStoreOption func(*RedisStore)

// WithDraftTTL overrides the retention applied to each saved draft.
func WithDraftTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore constructs a Redis-backed draft store.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	store := &RedisStore{
		client: client,
		ttl:    30 * time.Minute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (domain.Draft, error) {
	start := time.Now()
	defer func() {
		draftLoadDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	payload, err := s.client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Draft{}, sentinel.ErrNotFound
	}
	if err != nil {
		return domain.Draft{}, fmt.Errorf("load draft: %w", err)
	}
	var draft domain.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return domain.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, draft domain.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}
