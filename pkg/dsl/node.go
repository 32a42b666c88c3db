package dsl

import (
	"fmt"

	"github.com/aretw0/quest/pkg/domain"
)

// NodeBuilder provides a fluent API for configuring a node.
// Calling a kind method replaces the node with a fresh variant of that kind.
type NodeBuilder struct {
	id   string
	node domain.Node
	errs []error
}

// Dialogue makes the node a character line.
func (n *NodeBuilder) Dialogue(character, text string) *NodeBuilder {
	n.node = domain.Dialogue{ID: n.id, CharacterName: character, DialogueText: text, Options: []domain.Option{}}
	return n
}

// Combat makes the node an encounter at location.
func (n *NodeBuilder) Combat(location string) *NodeBuilder {
	n.node = domain.Combat{ID: n.id, LocationDescription: location, Enemies: []domain.Enemy{}}
	return n
}

// Exploration makes the node an area description.
func (n *NodeBuilder) Exploration(description string) *NodeBuilder {
	n.node = domain.Exploration{ID: n.id, Description: description, Paths: []domain.Path{}}
	return n
}

// Skill makes the node a check of name against dc.
func (n *NodeBuilder) Skill(name, category string, dc int) *NodeBuilder {
	n.node = domain.Skill{ID: n.id, Name: name, Category: category, DifficultyClass: dc}
	return n
}

// Item makes the node an object handed to the player.
func (n *NodeBuilder) Item(name, description string) *NodeBuilder {
	n.node = domain.Item{ID: n.id, ItemName: name, ItemDescription: description}
	return n
}

// Loot makes the node a loot table.
func (n *NodeBuilder) Loot(entries ...string) *NodeBuilder {
	n.node = domain.Loot{ID: n.id, LootTable: append([]string{}, entries...)}
	return n
}

// Option adds a dialogue choice.
func (n *NodeBuilder) Option(text, target string) *NodeBuilder {
	if v, ok := n.node.(domain.Dialogue); ok {
		v.Options = append(v.Options, domain.Option{Text: text, NextNodeID: target})
		n.node = v
		return n
	}
	return n.misuse("Option")
}

// Ideal marks the last dialogue option as the ideal path.
func (n *NodeBuilder) Ideal() *NodeBuilder {
	if v, ok := n.node.(domain.Dialogue); ok && len(v.Options) > 0 {
		v.Options = append([]domain.Option{}, v.Options...)
		v.Options[len(v.Options)-1].IsIdealPath = true
		n.node = v
		return n
	}
	return n.misuse("Ideal")
}

// Path adds a way out of an exploration.
func (n *NodeBuilder) Path(description, target string) *NodeBuilder {
	if v, ok := n.node.(domain.Exploration); ok {
		v.Paths = append(v.Paths, domain.Path{Description: description, NextNodeID: target})
		n.node = v
		return n
	}
	return n.misuse("Path")
}

// Enemy adds a group of opponents to a combat.
func (n *NodeBuilder) Enemy(name, typ string, count int) *NodeBuilder {
	if v, ok := n.node.(domain.Combat); ok {
		v.Enemies = append(v.Enemies, domain.Enemy{Name: name, Type: typ, Count: count})
		n.node = v
		return n
	}
	return n.misuse("Enemy")
}

// Defeat sets where a lost combat leads.
func (n *NodeBuilder) Defeat(target string) *NodeBuilder {
	if v, ok := n.node.(domain.Combat); ok {
		v.DefeatNodeID = target
		n.node = v
		return n
	}
	return n.misuse("Defeat")
}

// Success sets where a passed skill check leads.
func (n *NodeBuilder) Success(target string) *NodeBuilder {
	if v, ok := n.node.(domain.Skill); ok {
		v.SuccessNodeID = target
		n.node = v
		return n
	}
	return n.misuse("Success")
}

// Failure sets where a failed skill check leads.
func (n *NodeBuilder) Failure(target string) *NodeBuilder {
	if v, ok := n.node.(domain.Skill); ok {
		v.FailureNodeID = target
		n.node = v
		return n
	}
	return n.misuse("Failure")
}

// Text sets the context of a skill check or the exposition of an item.
func (n *NodeBuilder) Text(text string) *NodeBuilder {
	switch v := n.node.(type) {
	case domain.Skill:
		v.Context = text
		n.node = v
	case domain.Item:
		v.ExpositionText = text
		n.node = v
	default:
		return n.misuse("Text")
	}
	return n
}

// Next sets the single forward edge of a combat (victory), item or loot node.
func (n *NodeBuilder) Next(target string) *NodeBuilder {
	switch v := n.node.(type) {
	case domain.Combat:
		v.NextNodeID = target
		n.node = v
	case domain.Item:
		v.NextNodeID = target
		n.node = v
	case domain.Loot:
		v.NextNodeID = target
		n.node = v
	default:
		return n.misuse("Next")
	}
	return n
}

// Node returns the node as configured so far, nil before a kind is set.
func (n *NodeBuilder) Node() domain.Node {
	return n.node
}

func (n *NodeBuilder) misuse(method string) *NodeBuilder {
	kind := "untyped"
	if n.node != nil {
		kind = string(n.node.Kind())
	}
	n.errs = append(n.errs, fmt.Errorf("%s is not valid on %s node %q", method, kind, n.id))
	return n
}
