package ports

import (
	"context"

	"github.com/aretw0/quest/pkg/domain"
)

// AdventureStore defines the interface for persisting adventures.
// Every Save overwrites the full aggregate keyed by Adventure.ID.
type AdventureStore interface {
	// LoadAll returns every adventure that decodes. Corrupt records are skipped,
	// never reported as a list-level error.
	LoadAll(ctx context.Context) ([]*domain.Adventure, error)

	// Load retrieves one adventure.
	// Returns domain.ErrAdventureNotFound if it does not exist or cannot be decoded.
	Load(ctx context.Context, id string) (*domain.Adventure, error)

	// Save persists the adventure, replacing any previous snapshot.
	Save(ctx context.Context, adv *domain.Adventure) error

	// Delete removes the adventure. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error
}
