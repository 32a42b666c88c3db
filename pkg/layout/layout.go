// Package layout computes a layered 2-D placement of an adventure's nodes for map rendering.
//
// Nodes are leveled by breadth-first distance from the start node. Nodes that BFS never
// reaches share one extra level below the deepest reached one. Within a level, nodes keep
// BFS discovery order and are centered around a vertical axis.
package layout

import (
	"sort"

	"github.com/aretw0/quest/pkg/domain"
)

// Default geometry.
const (
	DefaultSpacingX = 220.0
	DefaultSpacingY = 250.0
	DefaultOffsetX  = 500.0
	DefaultOffsetY  = 150.0
)

// Placement is the computed position of one node.
type Placement struct {
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Level     int      `json:"level"`
	TypeLabel string   `json:"type"`
	Title     string   `json:"title"`
	ChildIDs  []string `json:"childIds"`
}

// Map is a computed layout keyed by node ID.
type Map map[string]Placement

type config struct {
	spacingX, spacingY float64
	offsetX, offsetY   float64
}

// Option configures the geometry.
type Option func(*config)

// WithSpacing sets the horizontal distance between siblings and the vertical distance between levels.
func WithSpacing(x, y float64) Option {
	return func(c *config) {
		c.spacingX, c.spacingY = x, y
	}
}

// WithOffset sets the horizontal offset of the axis and the vertical position of level 0.
func WithOffset(x, y float64) Option {
	return func(c *config) {
		c.offsetX, c.offsetY = x, y
	}
}

// Compute lays out adv. It reads the adventure only.
func Compute(adv *domain.Adventure, opts ...Option) Map {
	cfg := config{
		spacingX: DefaultSpacingX,
		spacingY: DefaultSpacingY,
		offsetX:  DefaultOffsetX,
		offsetY:  DefaultOffsetY,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	result := make(Map)
	if adv == nil {
		return result
	}
	for level, ids := range Levels(adv) {
		startX := -(float64(len(ids))*cfg.spacingX)/2 + cfg.offsetX
		for i, id := range ids {
			n := adv.Nodes[id]
			result[id] = Placement{
				ID:        id,
				X:         startX + float64(i)*cfg.spacingX,
				Y:         float64(level)*cfg.spacingY + cfg.offsetY,
				Level:     level,
				TypeLabel: domain.TypeLabel(n),
				Title:     domain.Title(n),
				ChildIDs:  childIDs(n),
			}
		}
	}
	return result
}

// Levels returns node IDs grouped by level, index = level.
// Reached levels are in BFS discovery order; the trailing orphan level, if any, is sorted by ID.
func Levels(adv *domain.Adventure) [][]string {
	var levels [][]string
	visited := make(map[string]bool)

	type item struct {
		id    string
		level int
	}
	var queue []item
	if _, ok := adv.StartNode(); ok {
		queue = append(queue, item{adv.StartNodeID, 0})
		visited[adv.StartNodeID] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.level == len(levels) {
			levels = append(levels, nil)
		}
		levels[cur.level] = append(levels[cur.level], cur.id)

		for _, child := range domain.OutgoingEdges(adv.Nodes[cur.id]) {
			if _, ok := adv.Nodes[child]; ok && !visited[child] {
				visited[child] = true
				queue = append(queue, item{child, cur.level + 1})
			}
		}
	}

	var orphans []string
	for id := range adv.Nodes {
		if !visited[id] {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		levels = append(levels, orphans)
	}
	return levels
}

func childIDs(n domain.Node) []string {
	edges := domain.OutgoingEdges(n)
	if edges == nil {
		return []string{}
	}
	return edges
}
