package ports

import "context"

// Watchable defines an interface for stores that can notify about backend changes.
// This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel that receives the ID of each adventure changed on the backend.
	// The channel is closed when ctx is canceled.
	Watch(ctx context.Context) (<-chan string, error)
}
