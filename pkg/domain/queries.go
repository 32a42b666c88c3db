package domain

import (
	"fmt"
	"strings"
)

// UntitledMarker is the title of a node whose variant title is blank.
const UntitledMarker = "Sin Título"

// GenericTitle is the title of variants without a titled field of their own.
const GenericTitle = "Nodo"

const explorationTitleRunes = 20

// Slot labels for the fixed edges.
const (
	SlotVictory  = "Victoria"
	SlotDefeat   = "Derrota"
	SlotSuccess  = "Éxito"
	SlotFailure  = "Fallo"
	SlotContinue = "Continuar"
)

// Slot is one edge field of a node, possibly empty.
type Slot struct {
	// Field locates the edge inside the node, e.g. "options[1]" or "successNodeId".
	Field string
	// Label is what a player picks to follow the edge.
	Label string
	// Target is the destination node ID, empty when unlinked.
	Target string
	// Optional marks fields that are allowed to stay empty (the combat defeat edge).
	Optional bool
}

// Title returns a short human label for the node.
func Title(n Node) string {
	var title string
	switch v := n.(type) {
	case Dialogue:
		title = fallback(v.CharacterName, LabelDialogue)
	case Combat:
		title = fallback(v.LocationDescription, LabelCombat)
	case Exploration:
		title = truncate(v.Description, explorationTitleRunes)
	case Skill:
		title = fallback(v.Name, fallback(v.Category, LabelSkill))
	case Item:
		title = v.ItemName
	case Loot:
		title = GenericTitle
	}
	if strings.TrimSpace(title) == "" {
		return UntitledMarker
	}
	return title
}

// TypeLabel returns the display label of the node's variant.
// A nil node yields an empty string.
func TypeLabel(n Node) string {
	if n == nil {
		return ""
	}
	return n.Kind().Label()
}

// Slots lists every edge field of the node in declaration order, including empty ones.
func Slots(n Node) []Slot {
	switch v := n.(type) {
	case Dialogue:
		slots := make([]Slot, 0, len(v.Options))
		for i, o := range v.Options {
			slots = append(slots, Slot{Field: fmt.Sprintf("options[%d]", i), Label: o.Text, Target: o.NextNodeID})
		}
		return slots
	case Exploration:
		slots := make([]Slot, 0, len(v.Paths))
		for i, p := range v.Paths {
			slots = append(slots, Slot{Field: fmt.Sprintf("paths[%d]", i), Label: p.Description, Target: p.NextNodeID})
		}
		return slots
	case Combat:
		return []Slot{
			{Field: "nextNodeId", Label: SlotVictory, Target: v.NextNodeID},
			{Field: "defeatNodeId", Label: SlotDefeat, Target: v.DefeatNodeID, Optional: true},
		}
	case Skill:
		return []Slot{
			{Field: "successNodeId", Label: SlotSuccess, Target: v.SuccessNodeID},
			{Field: "failureNodeId", Label: SlotFailure, Target: v.FailureNodeID},
		}
	case Item:
		return []Slot{{Field: "nextNodeId", Label: SlotContinue, Target: v.NextNodeID}}
	case Loot:
		return []Slot{{Field: "nextNodeId", Label: SlotContinue, Target: v.NextNodeID}}
	}
	return nil
}

// OutgoingEdges returns the target IDs of the node's edges, in order, skipping empty fields.
// Duplicates are kept: two options pointing at the same node are two edges.
func OutgoingEdges(n Node) []string {
	var edges []string
	for _, s := range Slots(n) {
		if s.Target != "" {
			edges = append(edges, s.Target)
		}
	}
	return edges
}

// HasEdgeTo reports whether any edge of n points at target.
func HasEdgeTo(n Node, target string) bool {
	if target == "" {
		return false
	}
	for _, id := range OutgoingEdges(n) {
		if id == target {
			return true
		}
	}
	return false
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
