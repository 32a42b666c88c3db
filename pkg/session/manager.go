package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/internal/metrics"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/graph"
	"github.com/aretw0/quest/pkg/layout"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/google/uuid"
)

// DefaultLockTTL bounds how long a distributed lock survives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager opens sessions over a store and serializes work per adventure ID.
// Lock entries are reference counted so unused ones are dropped.
type Manager struct {
	store ports.AdventureStore

	mu       sync.Mutex
	locks    map[string]*lockEntry
	sessions map[string]*Session

	locker   ports.DistributedLocker
	lockTTL  time.Duration
	newAdvID func() string
	settings Settings
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Manager and its sessions.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.settings.Logger = logger
	}
}

// WithMetrics records node visits and edits of every session.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.settings.Metrics = mt
	}
}

// WithLifecycleHooks registers observability hooks on every session.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.settings.Hooks = hooks
	}
}

// WithFillerPolicy selects the editor filler policy of every session.
func WithFillerPolicy(p editor.FillerPolicy) Option {
	return func(m *Manager) {
		m.settings.Filler = p
	}
}

// WithIDGenerator sets the generator for adventure and node IDs.
func WithIDGenerator(gen graph.IDGenerator) Option {
	return func(m *Manager) {
		m.newAdvID = gen
		m.settings.IDGenerator = gen
	}
}

// WithLayoutOptions sets the layout options used by Session.Layout.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(m *Manager) {
		m.settings.Layout = opts
	}
}

// NewManager creates a new Manager with the given persistence store.
func NewManager(store ports.AdventureStore, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		locks:    make(map[string]*lockEntry),
		sessions: make(map[string]*Session),
		lockTTL:  DefaultLockTTL,
		newAdvID: uuid.NewString,
	}
	m.settings.Logger = logging.NewNop()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// Store returns the underlying adventure store.
func (m *Manager) Store() ports.AdventureStore {
	return m.store
}

// List returns every readable adventure.
func (m *Manager) List(ctx context.Context) ([]*domain.Adventure, error) {
	return m.store.LoadAll(ctx)
}

// Create persists a new seeded adventure and opens a session on it.
func (m *Manager) Create(ctx context.Context, title, description string) (*Session, error) {
	adv := domain.NewAdventure(m.newAdvID(), title, description)

	var sess *Session
	err := m.WithLock(ctx, adv.ID, func(ctx context.Context) error {
		if err := m.store.Save(ctx, adv); err != nil {
			return fmt.Errorf("failed to create adventure: %w", err)
		}
		sess = m.remember(ctx, adv)
		return nil
	})
	return sess, err
}

// Open returns the session for id, refreshed from the store unless it is dirty.
// A session already open keeps its cursor and edit focus.
func (m *Manager) Open(ctx context.Context, id string) (*Session, error) {
	var sess *Session
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		sess, err = m.open(ctx, id)
		return err
	})
	return sess, err
}

// Do runs fn on the session for id while holding its lock.
func (m *Manager) Do(ctx context.Context, id string, fn func(context.Context, *Session) error) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		sess, err := m.open(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, sess)
	})
}

// Delete removes the adventure from the store and forgets its session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		if err := m.store.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete adventure: %w", err)
		}
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil
	})
}

// open must be called with the lock for id held.
// A dirty session is returned as is; reloading would discard its unsaved changes.
func (m *Manager) open(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	m.mu.Unlock()
	if ok && sess.Dirty() {
		m.settings.Logger.Warn("Serving unsaved session without refresh", "adventure_id", id)
		return sess, nil
	}

	adv, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		sess.replace(adv)
		return sess, nil
	}
	return m.remember(ctx, adv), nil
}

func (m *Manager) remember(ctx context.Context, adv *domain.Adventure) *Session {
	sess := New(ctx, m.store, adv, m.settings)
	m.mu.Lock()
	m.sessions[adv.ID] = sess
	m.mu.Unlock()
	return sess
}

// WithLock executes a function while holding the lock for the adventure.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.settings.Logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"adventure_id", id,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
