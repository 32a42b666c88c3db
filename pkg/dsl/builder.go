package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/quest/pkg/domain"
)

// Builder manages the adventure construction.
type Builder struct {
	adv   *domain.Adventure
	nodes map[string]*NodeBuilder
	order []string
}

// New creates a builder for an adventure whose start node is domain.StartNodeID.
func New(id, title string) *Builder {
	return &Builder{
		adv: &domain.Adventure{
			ID:          id,
			Title:       title,
			StartNodeID: domain.StartNodeID,
		},
		nodes: make(map[string]*NodeBuilder),
	}
}

// Describe sets the adventure description.
func (b *Builder) Describe(description string) *Builder {
	b.adv.Description = description
	return b
}

// Start changes the start node ID.
func (b *Builder) Start(id string) *Builder {
	b.adv.StartNodeID = id
	return b
}

// Add returns the builder of node id, creating it on first use.
// The node has no kind until one of the kind methods is called.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{id: id}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build assembles the adventure. It fails when a node has no kind, a method was
// called on a node of the wrong kind, or the start node was never added.
func (b *Builder) Build() (*domain.Adventure, error) {
	adv := &domain.Adventure{
		ID:          b.adv.ID,
		Title:       b.adv.Title,
		Description: b.adv.Description,
		StartNodeID: b.adv.StartNodeID,
		Nodes:       make(map[string]domain.Node, len(b.nodes)),
	}

	var errs []error
	for _, id := range b.order {
		nb := b.nodes[id]
		errs = append(errs, nb.errs...)
		if nb.node == nil {
			errs = append(errs, fmt.Errorf("node %q has no kind", id))
			continue
		}
		adv.Nodes[id] = domain.CloneNode(nb.node)
	}
	if _, ok := adv.Nodes[adv.StartNodeID]; !ok {
		errs = append(errs, fmt.Errorf("%w: start node %q", domain.ErrNodeNotFound, adv.StartNodeID))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return adv, nil
}
