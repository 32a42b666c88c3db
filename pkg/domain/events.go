package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventEnd       EventType = "adventure_end"
	EventEdit      EventType = "node_edit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
	AdventureID string    `json:"adventure_id"`
}

// NodeEvent reports that playback entered a node, or ended.
type NodeEvent struct {
	EventBase
	NodeID   string `json:"node_id"`
	NodeKind Kind   `json:"node_kind,omitempty"`
}

// EditEvent reports a mutating editor command.
type EditEvent struct {
	EventBase
	Command string `json:"command"`
	NodeID  string `json:"node_id,omitempty"`
	Err     error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnEnd       func(context.Context, *NodeEvent)
	OnEdit      func(context.Context, *EditEvent)
}
