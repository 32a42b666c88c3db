package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/quest/pkg/codec"
	"github.com/aretw0/quest/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// noExpiry is the index score used when no TTL is configured (2100-01-01).
const noExpiry = 4102444800

// Store implements ports.AdventureStore using Redis.
// Records are stored as JSON strings; a ZSET index tracks IDs scored by expiry.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Store)

// WithTTL sets the expiration for adventures.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for adventures.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithLogger sets the logger used to report skipped records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "quest:adventure:",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Client exposes the underlying client, e.g. to share it with a Locker.
func (s *Store) Client() *backend.Client {
	return s.client
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the adventure and refreshes its index entry.
func (s *Store) Save(ctx context.Context, adv *domain.Adventure) error {
	if adv == nil || adv.ID == "" {
		return fmt.Errorf("adventure id cannot be empty")
	}
	data, err := codec.EncodeJSON(adv)
	if err != nil {
		return fmt.Errorf("failed to encode adventure: %w", err)
	}

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = noExpiry
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(adv.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: adv.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves one adventure.
func (s *Store) Load(ctx context.Context, id string) (*domain.Adventure, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrAdventureNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	adv, err := codec.DecodeJSON(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAdventureNotFound, err)
	}
	return adv, nil
}

// Delete removes the adventure and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// LoadAll prunes expired index entries, then loads every remaining adventure in ID order.
// Entries whose record vanished or fails to decode are skipped.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Adventure, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired adventures: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list adventures: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Adventure{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adventures: %w", err)
	}

	all := make([]*domain.Adventure, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		adv, err := codec.DecodeJSON([]byte(raw))
		if err != nil {
			s.logger.Warn("skipping unreadable adventure", "id", ids[i], "err", err)
			continue
		}
		all = append(all, adv)
	}
	sortByID(all)
	return all, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
