// Package graph owns the node map of one adventure and enforces its mutation invariants.
package graph

import (
	"fmt"
	"sort"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/google/uuid"
)

// IDGenerator allocates globally unique node IDs.
type IDGenerator func() string

// Store holds one Adventure aggregate.
// Every mutation builds a new aggregate and swaps it in whole, so a reader holding
// a previous snapshot never observes a half-applied edit.
// Not safe for concurrent use: the caller guarantees a single writer.
type Store struct {
	adv   *domain.Adventure
	newID IDGenerator
}

// Option configures the Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore wraps a copy of adv.
func NewStore(adv *domain.Adventure, opts ...Option) *Store {
	if adv == nil {
		adv = &domain.Adventure{}
	}
	s := &Store{
		adv:   adv.Clone(),
		newID: uuid.NewString,
	}
	if s.adv.Nodes == nil {
		s.adv.Nodes = make(map[string]domain.Node)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Adventure returns the current aggregate.
// The returned value is a snapshot; later mutations do not change it.
func (s *Store) Adventure() *domain.Adventure {
	return s.adv
}

// Replace swaps in a new aggregate.
func (s *Store) Replace(adv *domain.Adventure) {
	s.adv = adv.Clone()
}

// NewID returns a fresh node ID from the store's generator.
func (s *Store) NewID() string {
	return s.newID()
}

// Get looks up a node by ID.
func (s *Store) Get(id string) (domain.Node, bool) {
	return s.adv.Node(id)
}

// Has reports whether id is a key of the node map.
func (s *Store) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Nodes lists every node, start node first, then by ID.
func (s *Store) Nodes() []domain.Node {
	nodes := make([]domain.Node, 0, len(s.adv.Nodes))
	for _, n := range s.adv.Nodes {
		nodes = append(nodes, n)
	}
	start := s.adv.StartNodeID
	sort.Slice(nodes, func(i, j int) bool {
		a, b := nodes[i].NodeID(), nodes[j].NodeID()
		if (a == start) != (b == start) {
			return a == start
		}
		return a < b
	})
	return nodes
}

// Upsert inserts or overwrites a node by its ID and returns the updated aggregate.
func (s *Store) Upsert(n domain.Node) (*domain.Adventure, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot upsert nil node")
	}
	if n.NodeID() == "" {
		return nil, fmt.Errorf("cannot upsert node without id")
	}
	next := s.adv.Clone()
	next.Nodes[n.NodeID()] = domain.CloneNode(n)
	s.adv = next
	return next, nil
}

// Remove deletes a node. The start node is refused with domain.ErrStartNodeProtected.
// Edges pointing at the removed node are left dangling. Removing an absent ID is a no-op.
func (s *Store) Remove(id string) (*domain.Adventure, error) {
	if id == s.adv.StartNodeID {
		return s.adv, domain.ErrStartNodeProtected
	}
	if !s.Has(id) {
		return s.adv, nil
	}
	next := s.adv.Clone()
	delete(next.Nodes, id)
	s.adv = next
	return next, nil
}

// Create allocates a fresh ID, inserts the minimal instance of kind and returns the ID.
func (s *Store) Create(kind domain.Kind) (string, error) {
	id := s.newID()
	n, err := domain.NewNode(kind, id)
	if err != nil {
		return "", err
	}
	if _, err := s.Upsert(n); err != nil {
		return "", err
	}
	return id, nil
}

// SetMetadata updates title and description.
func (s *Store) SetMetadata(title, description string) *domain.Adventure {
	next := s.adv.Clone()
	next.Title = title
	next.Description = description
	s.adv = next
	return next
}
