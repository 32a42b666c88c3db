package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/quest/pkg/domain"
)

// LogHooks logs playback at Debug and edits at Debug, or Warn when the edit failed.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "node_enter",
				"adventure_id", e.AdventureID,
				"node_id", e.NodeID,
				"kind", e.NodeKind,
			)
		},
		OnEnd: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "adventure_end",
				"adventure_id", e.AdventureID,
				"target", e.NodeID,
			)
		},
		OnEdit: func(ctx context.Context, e *domain.EditEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "node_edit",
					"adventure_id", e.AdventureID,
					"command", e.Command,
					"node_id", e.NodeID,
					"err", e.Err,
				)
				return
			}
			logger.DebugContext(ctx, "node_edit",
				"adventure_id", e.AdventureID,
				"command", e.Command,
				"node_id", e.NodeID,
			)
		},
	}
}

// Combine returns hooks that call every set in order. Nil callbacks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		if h.OnNodeEnter != nil {
			out.OnNodeEnter = chain(out.OnNodeEnter, h.OnNodeEnter)
		}
		if h.OnEnd != nil {
			out.OnEnd = chain(out.OnEnd, h.OnEnd)
		}
		if h.OnEdit != nil {
			out.OnEdit = chain(out.OnEdit, h.OnEdit)
		}
	}
	return out
}

func chain[E any](first, next func(context.Context, E)) func(context.Context, E) {
	if first == nil {
		return next
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		next(ctx, e)
	}
}
