package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/internal/metrics"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/persistence/middleware"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/aretw0/quest/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNotWatchable is returned by Watch when the store cannot report changes.
var ErrNotWatchable = errors.New("store does not support watching")

// Engine is the high-level entry point for the Quest library.
// It wires a store, its middleware and a session.Manager together.
type Engine struct {
	// Manager opens sessions over Store.
	Manager *session.Manager
	// Store is the backend wrapped in the configured middleware.
	Store ports.AdventureStore
	// Registry holds the engine metrics.
	Registry *prometheus.Registry

	backend     ports.AdventureStore
	locker      ports.DistributedLocker
	middlewares []middleware.Middleware
	filler      editor.FillerPolicy
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	closers     []func() error
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore sets the backend. The default is an empty in-memory store.
func WithStore(store ports.AdventureStore) Option {
	return func(e *Engine) {
		e.backend = store
	}
}

// WithLocker serializes edits across processes sharing the store.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = locker
	}
}

// WithMiddleware wraps the backend inside the instrumentation layer, first one outermost.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(e *Engine) {
		e.middlewares = append(e.middlewares, mws...)
	}
}

// WithFillerPolicy selects how type changes fill edges with nothing to carry forward.
func WithFillerPolicy(p editor.FillerPolicy) Option {
	return func(e *Engine) {
		e.filler = p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCloser registers a function run by Close, e.g. a database handle.
func WithCloser(fn func() error) Option {
	return func(e *Engine) {
		e.closers = append(e.closers, fn)
	}
}

// New initializes a new Quest Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		Registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.backend == nil {
		e.backend = memory.NewStore()
	}

	m := metrics.New(e.Registry)
	mws := append([]middleware.Middleware{middleware.NewInstrumentation(m, e.logger)}, e.middlewares...)
	e.Store = middleware.Chain(e.backend, mws...)

	sessOpts := []session.Option{
		session.WithLogger(e.logger),
		session.WithMetrics(m),
		session.WithFillerPolicy(e.filler),
		session.WithLifecycleHooks(e.hooks),
	}
	if e.locker != nil {
		sessOpts = append(sessOpts, session.WithLocker(e.locker))
	}
	e.Manager = session.NewManager(e.Store, sessOpts...)
	return e, nil
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Import saves adv, replacing any stored adventure with the same ID.
func (e *Engine) Import(ctx context.Context, adv *domain.Adventure) error {
	if adv == nil || adv.ID == "" {
		return fmt.Errorf("%w: adventure has no id", domain.ErrDecode)
	}
	return e.Manager.WithLock(ctx, adv.ID, func(ctx context.Context) error {
		if err := e.Store.Save(ctx, adv); err != nil {
			return fmt.Errorf("failed to import adventure: %w", err)
		}
		return nil
	})
}

// Watch returns a channel that reports the ID of every adventure changed in the backend.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.backend.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, ErrNotWatchable
}

// Watcher returns the backend as a Watchable when it is one.
func (e *Engine) Watcher() (ports.Watchable, bool) {
	w, ok := e.backend.(ports.Watchable)
	return w, ok
}

// Close releases the resources registered with WithCloser.
func (e *Engine) Close() error {
	var errs []error
	for _, c := range e.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
