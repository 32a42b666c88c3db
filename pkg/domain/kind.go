package domain

import (
	"fmt"
	"strings"
)

// Kind is the type tag of a node variant.
// The string value is the tag written to persisted records.
type Kind string

const (
	KindDialogue    Kind = "dialogue"
	KindCombat      Kind = "combat"
	KindExploration Kind = "exploration"
	KindSkill       Kind = "skill"
	KindItem        Kind = "item"
	KindLoot        Kind = "loot"
)

// Display labels, as shown by the editor and the map.
const (
	LabelDialogue    = "Diálogo"
	LabelCombat      = "Combate"
	LabelExploration = "Exploración"
	LabelSkill       = "Habilidad"
	LabelItem        = "Objeto"
	LabelLoot        = "Loot"
)

// Kinds lists every node kind in editor order.
var Kinds = []Kind{KindDialogue, KindCombat, KindExploration, KindSkill, KindItem, KindLoot}

// Label returns the display label of the kind.
func (k Kind) Label() string {
	switch k {
	case KindDialogue:
		return LabelDialogue
	case KindCombat:
		return LabelCombat
	case KindExploration:
		return LabelExploration
	case KindSkill:
		return LabelSkill
	case KindItem:
		return LabelItem
	case KindLoot:
		return LabelLoot
	}
	return string(k)
}

// Valid reports whether k is one of the six kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind resolves a type tag ("combat") or a display label ("Combate").
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	clean := strings.TrimSpace(s)
	for _, k := range Kinds {
		if strings.EqualFold(clean, string(k)) || strings.EqualFold(clean, k.Label()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
