package http

import (
	"log/slog"
	"sync"
)

// StreamManager fans change notifications out to SSE subscribers, keyed by adventure ID.
// The empty key receives every notification.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates an empty StreamManager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel for adventureID. Call the returned func to unsubscribe.
func (sm *StreamManager) Subscribe(adventureID string) (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[adventureID]; !ok {
		sm.subscribers[adventureID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[adventureID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[adventureID]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, adventureID)
			}
		}
	}
}

// Broadcast sends msg to the subscribers of adventureID and to global subscribers.
// Slow clients drop messages instead of blocking the writer.
func (sm *StreamManager) Broadcast(adventureID, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	targets := []string{adventureID}
	if adventureID != "" {
		targets = append(targets, "")
	}
	for _, key := range targets {
		for ch := range sm.subscribers[key] {
			select {
			case ch <- msg:
			default:
				sm.logger.Warn("SSE: Client buffer full, dropping message", "adventure_id", adventureID)
			}
		}
	}
}
