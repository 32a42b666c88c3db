package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/quest/pkg/domain"
)

// Store implements ports.AdventureStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Adventure
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally seeded with adventures.
func NewStore(seed ...*domain.Adventure) *Store {
	s := &Store{
		data: make(map[string]*domain.Adventure),
	}
	for _, adv := range seed {
		if adv != nil {
			s.data[adv.ID] = adv.Clone()
		}
	}
	return s
}

// LoadAll returns copies of every stored adventure, ordered by ID.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*domain.Adventure, 0, len(s.data))
	for _, adv := range s.data {
		all = append(all, adv.Clone())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// Load retrieves a copy of the adventure so callers can't mutate the stored snapshot.
func (s *Store) Load(ctx context.Context, id string) (*domain.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adv, ok := s.data[id]
	if !ok {
		return nil, domain.ErrAdventureNotFound
	}
	return adv.Clone(), nil
}

// Save stores a copy of the adventure.
func (s *Store) Save(ctx context.Context, adv *domain.Adventure) error {
	if adv == nil || adv.ID == "" {
		return fmt.Errorf("adventure id cannot be empty")
	}

	copied := adv.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[copied.ID] = copied
	return nil
}

// Delete removes the adventure.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
