package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/quest/pkg/domain"
)

// Overlay contains playback state to highlight on the graph.
type Overlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart of an adventure, start node first.
// Shapes follow the node kind:
//   - Start: ((Circle))
//   - Combat: {{Hexagon}}
//   - Skill: {Rhombus}
//   - Exploration: [/Parallelogram/]
//   - Item: [[Subroutine]]
//   - Loot: [(Cylinder)]
//   - Dialogue: [Rectangle]
//
// Edges are labelled with the option text, path description or outcome. Edges to IDs
// that are not in the adventure end at a dashed "missing" node.
func GenerateMermaid(adv *domain.Adventure, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if adv == nil {
		return sb.String()
	}

	missing := make(map[string]bool)
	for _, node := range ordered(adv) {
		id := node.NodeID()
		safeID := sanitizeMermaidID(id)

		opener, closer := shape(node)
		if id == adv.StartNodeID {
			opener, closer = "((", "))"
		}
		label := escape(domain.Title(node)) + "<br/><i>" + escape(domain.TypeLabel(node)) + "</i>"
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, slot := range domain.Slots(node) {
			if slot.Target == "" {
				continue
			}
			arrow := "-->"
			if slot.Label != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", escape(slot.Label))
			}
			if _, ok := adv.Node(slot.Target); !ok {
				missing[slot.Target] = true
				arrow = "-.->"
				if slot.Label != "" {
					arrow = fmt.Sprintf("-. \"%s\" .->", escape(slot.Label))
				}
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(slot.Target)))
		}
	}

	if len(missing) > 0 {
		ids := make([]string, 0, len(missing))
		for id := range missing {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		sb.WriteString("\n    %% Missing targets\n")
		sb.WriteString("    classDef missing fill:#fff,stroke:#d32f2f,stroke-dasharray:4 4,color:#d32f2f;\n")
		for _, id := range ids {
			safe := sanitizeMermaidID(id)
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safe, escape(id)))
			sb.WriteString(fmt.Sprintf("    class %s missing;\n", safe))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on light fills under both themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visited[safeID] && safeID != "" {
				visited[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.CurrentNode != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func ordered(adv *domain.Adventure) []domain.Node {
	ids := make([]string, 0, len(adv.Nodes))
	for id := range adv.Nodes {
		if id != adv.StartNodeID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]domain.Node, 0, len(adv.Nodes))
	if start, ok := adv.StartNode(); ok {
		out = append(out, start)
	}
	for _, id := range ids {
		out = append(out, adv.Nodes[id])
	}
	return out
}

func shape(n domain.Node) (string, string) {
	switch n.Kind() {
	case domain.KindCombat:
		return "{{", "}}"
	case domain.KindSkill:
		return "{", "}"
	case domain.KindExploration:
		return "[/", "/]"
	case domain.KindItem:
		return "[[", "]]"
	case domain.KindLoot:
		return "[(", ")]"
	}
	return "[", "]"
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
