package remote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/slidekit/carousel/pkg/errors"
)

// keyPrefix namespaces snapshot keys in a shared Redis instance.
const keyPrefix = "carousel:show:"

// RedisStore shares snapshots through Redis so multiple server instances
// (or external pollers) see the same playback state. Entries expire after
// the configured TTL so crashed instances don't leave stale state behind.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures the Redis snapshot store.
type RedisConfig struct {
	// Addr is the Redis host:port.
	Addr string

	// Password is optional.
	Password string

	// DB selects the Redis database number.
	DB int

	// TTL bounds snapshot lifetime; DefaultTTL when zero.
	TTL time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping redis at %s", cfg.Addr)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Save stores the snapshot as JSON with the configured TTL.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot for show %s", snap.ShowID)
	}
	if err := s.client.Set(ctx, keyPrefix+snap.ShowID, data, s.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save snapshot for show %s", snap.ShowID)
	}
	return nil
}

// Load returns the stored snapshot, or nil, nil when absent or expired.
func (s *RedisStore) Load(ctx context.Context, showID string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, keyPrefix+showID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load snapshot for show %s", showID)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode snapshot for show %s", showID)
	}
	return &snap, nil
}

// Delete removes the snapshot, if present.
func (s *RedisStore) Delete(ctx context.Context, showID string) error {
	if err := s.client.Del(ctx, keyPrefix+showID).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete snapshot for show %s", showID)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements StateStore.
var _ StateStore = (*RedisStore)(nil)
