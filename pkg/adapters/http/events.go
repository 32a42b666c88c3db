package http

import (
	"fmt"
	"net/http"
)

// SubscribeEvents handles GET /events (SSE).
//
// With ?adventure=<id> the client receives a message after every change made through this
// server to that adventure. Without it the client receives every change, plus the backend
// notifications of the store when it is Watchable (files edited by hand, other replicas).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, params SubscribeEventsParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	adventureID := deref(params.Adventure)
	ch, cancel := s.Streams.Subscribe(adventureID)
	defer cancel()

	var backend <-chan string
	if adventureID == "" && s.watcher != nil {
		events, err := s.watcher.Watch(r.Context())
		if err != nil {
			s.writeError(w, fmt.Errorf("watch error: %w", err))
			return
		}
		backend = events
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	s.logger.Info("SSE: Client subscribed", "adventure_id", adventureID)
	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE: Client disconnected", "adventure_id", adventureID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case id, ok := <-backend:
			if !ok {
				backend = nil
				continue
			}
			fmt.Fprintf(w, "event: reload\ndata: %s\n\n", id)
			flusher.Flush()
		}
	}
}
