// Package play moves the "current node" pointer through an adventure during playback.
//
// The cursor never inspects node content to choose a destination: the caller resolves
// the destination from the player's pick (option, combat outcome, skill roll, or the
// single linear edge) and hands it to GoTo.
package play

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/quest/pkg/domain"
)

// ErrEnded is returned when moving a cursor that already reached the end of the adventure.
var ErrEnded = errors.New("adventure has ended")

// ErrNoSuchChoice is returned when a choice index is out of range.
var ErrNoSuchChoice = errors.New("no such choice")

// Cursor is the playback state: the current node ID, or none once the adventure ended.
type Cursor struct {
	current string
	ended   bool
	history []string
	hooks   domain.LifecycleHooks
}

// Option configures the Cursor.
type Option func(*Cursor)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Cursor) {
		c.hooks = hooks
	}
}

// NewCursor creates a cursor positioned nowhere. Call Reset to enter an adventure.
func NewCursor(opts ...Option) *Cursor {
	c := &Cursor{ended: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset re-enters the adventure at its start node.
// A missing start node leaves the cursor ended.
func (c *Cursor) Reset(ctx context.Context, adv *domain.Adventure) (domain.Node, bool) {
	c.ended = false
	c.history = nil
	c.current = ""
	if adv == nil {
		c.ended = true
		return nil, false
	}
	node, ok := c.enter(ctx, adv, adv.StartNodeID)
	return node, ok
}

// GoTo moves the cursor to id. An ID that is not a key of the node map ends the adventure;
// that is a dead end, not an error. Moving an ended cursor returns ErrEnded.
func (c *Cursor) GoTo(ctx context.Context, adv *domain.Adventure, id string) (domain.Node, error) {
	if c.ended {
		return nil, ErrEnded
	}
	node, _ := c.enter(ctx, adv, id)
	return node, nil
}

// Choose follows the index-th choice of the current node.
func (c *Cursor) Choose(ctx context.Context, adv *domain.Adventure, index int) (domain.Node, error) {
	current, ok := c.Current(adv)
	if !ok {
		return nil, ErrEnded
	}
	choices := Choices(current)
	if index < 0 || index >= len(choices) {
		return nil, ErrNoSuchChoice
	}
	return c.GoTo(ctx, adv, choices[index].Target)
}

// Current resolves the current node against adv.
// It reports false when the adventure ended or the node has since been deleted.
func (c *Cursor) Current(adv *domain.Adventure) (domain.Node, bool) {
	if c.ended {
		return nil, false
	}
	return adv.Node(c.current)
}

// CurrentID returns the current node ID, empty once ended.
func (c *Cursor) CurrentID() string {
	if c.ended {
		return ""
	}
	return c.current
}

// Ended reports whether the cursor reached the end of the adventure.
func (c *Cursor) Ended() bool {
	return c.ended
}

// History returns the visited node IDs in order.
func (c *Cursor) History() []string {
	return append([]string(nil), c.history...)
}

func (c *Cursor) enter(ctx context.Context, adv *domain.Adventure, id string) (domain.Node, bool) {
	var advID string
	if adv != nil {
		advID = adv.ID
	}
	node, ok := adv.Node(id)
	if !ok {
		c.current = ""
		c.ended = true
		if c.hooks.OnEnd != nil {
			c.hooks.OnEnd(ctx, &domain.NodeEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventEnd, AdventureID: advID},
				NodeID:    id,
			})
		}
		return nil, false
	}
	c.current = id
	c.history = append(c.history, id)
	if c.hooks.OnNodeEnter != nil {
		c.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeEnter, AdventureID: advID},
			NodeID:    id,
			NodeKind:  node.Kind(),
		})
	}
	return node, true
}
