package play

import "github.com/aretw0/quest/pkg/domain"

// Choice is one edge a player can follow from a node.
type Choice struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Choices lists the edges offered by a node, in order.
// Unlinked slots are kept (following them ends the adventure), except the optional
// combat defeat edge, which is only offered when linked.
func Choices(n domain.Node) []Choice {
	var choices []Choice
	for _, s := range domain.Slots(n) {
		if s.Optional && s.Target == "" {
			continue
		}
		choices = append(choices, Choice{Label: s.Label, Target: s.Target})
	}
	return choices
}
