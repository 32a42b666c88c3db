package middleware

import (
	"context"
	"errors"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

// ErrReadOnly is returned by writes through a read-only store.
var ErrReadOnly = errors.New("adventure store is read-only")

type readOnly struct {
	ports.AdventureStore
}

// NewReadOnly rejects Save and Delete, e.g. for a player-only deployment.
func NewReadOnly() Middleware {
	return func(next ports.AdventureStore) ports.AdventureStore {
		return &readOnly{AdventureStore: next}
	}
}

func (r *readOnly) Save(ctx context.Context, adv *domain.Adventure) error {
	return ErrReadOnly
}

func (r *readOnly) Delete(ctx context.Context, id string) error {
	return ErrReadOnly
}
