package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/quest/internal/metrics"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

const (
	statusOK       = "ok"
	statusNotFound = "not_found"
	statusError    = "error"
)

type instrumented struct {
	next    ports.AdventureStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewInstrumentation records a counter and a latency observation for every store call,
// and logs failures other than not-found at Warn. Either m or logger may be nil.
func NewInstrumentation(m *metrics.Metrics, logger *slog.Logger) Middleware {
	return func(next ports.AdventureStore) ports.AdventureStore {
		return &instrumented{next: next, metrics: m, logger: logger}
	}
}

func (s *instrumented) observe(op string, start time.Time, err error, attrs ...any) {
	status := statusOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAdventureNotFound):
		status = statusNotFound
	default:
		status = statusError
	}

	if s.metrics != nil {
		s.metrics.StoreOperations.WithLabelValues(op, status).Inc()
		s.metrics.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
	if s.logger != nil {
		if status == statusError {
			s.logger.Warn("store operation failed", append(attrs, "op", op, "err", err)...)
		} else {
			s.logger.Debug("store operation", append(attrs, "op", op, "status", status)...)
		}
	}
}

func (s *instrumented) LoadAll(ctx context.Context) ([]*domain.Adventure, error) {
	start := time.Now()
	all, err := s.next.LoadAll(ctx)
	s.observe("load_all", start, err, "count", len(all))
	return all, err
}

func (s *instrumented) Load(ctx context.Context, id string) (*domain.Adventure, error) {
	start := time.Now()
	adv, err := s.next.Load(ctx, id)
	s.observe("load", start, err, "adventure_id", id)
	return adv, err
}

func (s *instrumented) Save(ctx context.Context, adv *domain.Adventure) error {
	start := time.Now()
	err := s.next.Save(ctx, adv)
	id := ""
	if adv != nil {
		id = adv.ID
	}
	s.observe("save", start, err, "adventure_id", id)
	return err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err, "adventure_id", id)
	return err
}
