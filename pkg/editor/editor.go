// Package editor implements the authoring commands over a graph.Store:
// type changes, quick-create-and-link, detached creation, deletion and reverse-edge queries.
//
// The editor mutates the in-memory graph only. Persisting each snapshot is the job of the
// caller (see package session).
package editor

import (
	"fmt"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/graph"
)

// FillerPolicy decides what a type change writes into a required edge that has no
// value to carry forward.
type FillerPolicy int

const (
	// FillerEmpty leaves the edge empty. Diagnose reports it as unlinked.
	FillerEmpty FillerPolicy = iota
	// FillerMintID writes a freshly generated ID that no node owns yet, producing a
	// dangling edge until a node with that ID is created.
	FillerMintID
)

// Editor applies authoring commands to one graph store.
type Editor struct {
	store  *graph.Store
	filler FillerPolicy
}

// Option configures the Editor.
type Option func(*Editor)

// WithFillerPolicy selects how type changes fill edges with nothing to carry forward.
func WithFillerPolicy(p FillerPolicy) Option {
	return func(e *Editor) {
		e.filler = p
	}
}

// New creates an editor over store.
func New(store *graph.Store, opts ...Option) *Editor {
	e := &Editor{store: store, filler: FillerEmpty}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the underlying graph store.
func (e *Editor) Store() *graph.Store {
	return e.store
}

// UpdateNode overwrites a node with a full new value.
func (e *Editor) UpdateNode(n domain.Node) error {
	_, err := e.store.Upsert(n)
	return err
}

// ChangeNodeType replaces the variant of node id with the minimal instance of kind,
// keeping the ID and carrying the node's primary forward edge into the new variant.
// Changing a node to its own kind is a no-op.
func (e *Editor) ChangeNodeType(id string, kind domain.Kind) (domain.Node, error) {
	current, ok := e.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	if current.Kind() == kind {
		return current, nil
	}

	carried := primaryEdge(current)
	if carried == "" {
		carried = e.fill()
	}

	var next domain.Node
	switch kind {
	case domain.KindDialogue:
		options := []domain.Option{}
		if carried != "" {
			options = append(options, domain.Option{NextNodeID: carried})
		}
		next = domain.Dialogue{ID: id, Options: options}
	case domain.KindCombat:
		next = domain.Combat{ID: id, Enemies: []domain.Enemy{}, NextNodeID: carried}
	case domain.KindExploration:
		next = domain.Exploration{ID: id, Paths: []domain.Path{}}
	case domain.KindSkill:
		next = domain.Skill{
			ID:              id,
			Category:        domain.DefaultSkillCategory,
			DifficultyClass: domain.DefaultDifficultyClass,
			SuccessNodeID:   carried,
			FailureNodeID:   e.fill(),
		}
	case domain.KindItem:
		next = domain.Item{ID: id, NextNodeID: carried}
	case domain.KindLoot:
		next = domain.Loot{ID: id, LootTable: []string{}, NextNodeID: carried}
	}

	if _, err := e.store.Upsert(next); err != nil {
		return nil, err
	}
	return next, nil
}

// AddChildAndLink creates an empty Dialogue node and links node id to it with label.
// It returns the new node's ID.
func (e *Editor) AddChildAndLink(id, label string) (string, error) {
	return e.LinkNew(id, domain.KindDialogue, label)
}

// LinkNew creates an empty node of kind and links node id to it:
// Dialogue gains an option, Exploration gains a path, Combat/Item/Loot have their
// single forward edge overwritten. Skill nodes are left unlinked because the target
// could be either branch; the new node is still created.
func (e *Editor) LinkNew(id string, kind domain.Kind, label string) (string, error) {
	parent, ok := e.store.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	childID, err := e.store.Create(kind)
	if err != nil {
		return "", err
	}

	linked, changed := link(parent, childID, label)
	if changed {
		if _, err := e.store.Upsert(linked); err != nil {
			return "", err
		}
	}
	return childID, nil
}

// CreateDetached creates an empty node of kind without linking it.
func (e *Editor) CreateDetached(kind domain.Kind) (string, error) {
	return e.store.Create(kind)
}

// DeleteNode removes node id. The start node is refused with domain.ErrStartNodeProtected.
func (e *Editor) DeleteNode(id string) error {
	_, err := e.store.Remove(id)
	return err
}

// FindParents returns every node with an edge to targetID, in store listing order.
func (e *Editor) FindParents(targetID string) []domain.Node {
	var parents []domain.Node
	for _, n := range e.store.Nodes() {
		if domain.HasEdgeTo(n, targetID) {
			parents = append(parents, n)
		}
	}
	return parents
}

func (e *Editor) fill() string {
	if e.filler == FillerMintID {
		return e.store.NewID()
	}
	return ""
}

// primaryEdge is the edge a type change carries forward.
func primaryEdge(n domain.Node) string {
	switch v := n.(type) {
	case domain.Dialogue:
		if len(v.Options) > 0 {
			return v.Options[0].NextNodeID
		}
	case domain.Exploration:
		if len(v.Paths) > 0 {
			return v.Paths[0].NextNodeID
		}
	case domain.Combat:
		return v.NextNodeID
	case domain.Loot:
		return v.NextNodeID
	case domain.Item:
		return v.NextNodeID
	case domain.Skill:
		return v.SuccessNodeID
	}
	return ""
}

func link(parent domain.Node, childID, label string) (domain.Node, bool) {
	switch v := domain.CloneNode(parent).(type) {
	case domain.Dialogue:
		v.Options = append(v.Options, domain.Option{Text: label, NextNodeID: childID})
		return v, true
	case domain.Exploration:
		v.Paths = append(v.Paths, domain.Path{Description: label, NextNodeID: childID})
		return v, true
	case domain.Combat:
		v.NextNodeID = childID
		return v, true
	case domain.Item:
		v.NextNodeID = childID
		return v, true
	case domain.Loot:
		v.NextNodeID = childID
		return v, true
	}
	return parent, false
}
