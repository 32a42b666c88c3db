package editor

import (
	"sort"

	"github.com/aretw0/quest/pkg/domain"
)

// Edge locates one edge field of a node.
type Edge struct {
	From   string `json:"from"`
	Field  string `json:"field"`
	Target string `json:"target"`
}

// Report lists structural warnings. None of them block editing or playback.
type Report struct {
	// MissingStart is set when the start node ID is not a key of the node map.
	MissingStart bool `json:"missingStart"`
	// Dangling edges point at IDs that are not in the node map.
	Dangling []Edge `json:"dangling"`
	// Unlinked edges are required edge fields left empty.
	Unlinked []Edge `json:"unlinked"`
	// Orphans are nodes other than the start node with no inbound edges.
	Orphans []string `json:"orphans"`
	// Unreachable nodes cannot be reached from the start node.
	Unreachable []string `json:"unreachable"`
}

// Clean reports whether the report carries no warning.
func (r Report) Clean() bool {
	return !r.MissingStart && len(r.Dangling) == 0 && len(r.Unlinked) == 0 &&
		len(r.Orphans) == 0 && len(r.Unreachable) == 0
}

// Diagnose scans the graph for broken links, pending edges and unreachable nodes.
func (e *Editor) Diagnose() Report {
	adv := e.store.Adventure()
	report := Report{
		Dangling:    []Edge{},
		Unlinked:    []Edge{},
		Orphans:     []string{},
		Unreachable: []string{},
	}
	if _, ok := adv.StartNode(); !ok {
		report.MissingStart = true
	}

	inbound := make(map[string]int)
	for _, n := range e.store.Nodes() {
		for _, s := range domain.Slots(n) {
			edge := Edge{From: n.NodeID(), Field: s.Field, Target: s.Target}
			switch {
			case s.Target == "":
				if !s.Optional {
					report.Unlinked = append(report.Unlinked, edge)
				}
			case !e.store.Has(s.Target):
				report.Dangling = append(report.Dangling, edge)
			default:
				inbound[s.Target]++
			}
		}
	}

	reached := reachable(adv)
	for _, n := range e.store.Nodes() {
		id := n.NodeID()
		if id != adv.StartNodeID && inbound[id] == 0 {
			report.Orphans = append(report.Orphans, id)
		}
		if !reached[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	sort.Strings(report.Orphans)
	sort.Strings(report.Unreachable)
	return report
}

func reachable(adv *domain.Adventure) map[string]bool {
	seen := make(map[string]bool)
	if _, ok := adv.StartNode(); !ok {
		return seen
	}
	queue := []string{adv.StartNodeID}
	seen[adv.StartNodeID] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n, _ := adv.Node(id)
		for _, next := range domain.OutgoingEdges(n) {
			if _, ok := adv.Node(next); ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
