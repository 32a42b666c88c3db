package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/play"
)

// NodeMarkdown formats a node for the play screen.
func NodeMarkdown(n domain.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", domain.Title(n))
	fmt.Fprintf(&sb, "_%s_\n\n", domain.TypeLabel(n))

	switch v := n.(type) {
	case domain.Dialogue:
		if v.CharacterName != "" {
			fmt.Fprintf(&sb, "**%s:** ", v.CharacterName)
		}
		sb.WriteString(v.DialogueText + "\n")
	case domain.Combat:
		if v.LocationDescription != "" {
			sb.WriteString(v.LocationDescription + "\n\n")
		}
		for _, e := range v.Enemies {
			fmt.Fprintf(&sb, "- %d × %s", e.Count, e.Name)
			if e.Type != "" {
				fmt.Fprintf(&sb, " (%s)", e.Type)
			}
			sb.WriteString("\n")
		}
	case domain.Exploration:
		sb.WriteString(v.Description + "\n")
	case domain.Skill:
		fmt.Fprintf(&sb, "Tirada de **%s** (%s), CD %d\n", v.Name, v.Category, v.DifficultyClass)
		if v.Context != "" {
			sb.WriteString("\n" + v.Context + "\n")
		}
	case domain.Item:
		fmt.Fprintf(&sb, "**%s**: %s\n", v.ItemName, v.ItemDescription)
		if v.ExpositionText != "" {
			sb.WriteString("\n" + v.ExpositionText + "\n")
		}
	case domain.Loot:
		for _, entry := range v.LootTable {
			fmt.Fprintf(&sb, "- %s\n", entry)
		}
	}
	return sb.String()
}

// ChoicesMarkdown numbers the choices from 1.
func ChoicesMarkdown(choices []play.Choice) string {
	if len(choices) == 0 {
		return "_Fin._\n"
	}
	var sb strings.Builder
	for i, c := range choices {
		label := c.Label
		if label == "" {
			label = domain.SlotContinue
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, label)
	}
	return sb.String()
}
