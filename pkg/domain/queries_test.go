package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"Dialogue With Character", Dialogue{CharacterName: "Elara"}, "Elara"},
		{"Dialogue Fallback", Dialogue{}, LabelDialogue},
		{"Combat Fallback", Combat{}, LabelCombat},
		{"Combat Location", Combat{LocationDescription: "Cripta"}, "Cripta"},
		{"Exploration Truncated", Exploration{Description: "Un bosque oscuro y profundo lleno de ecos"}, "Un bosque oscuro y p"},
		{"Exploration Blank", Exploration{}, UntitledMarker},
		{"Skill Name", Skill{Name: "Trepar", Category: "Fuerza"}, "Trepar"},
		{"Skill Category", Skill{Category: "Fuerza"}, "Fuerza"},
		{"Skill Fallback", Skill{}, LabelSkill},
		{"Item Name", Item{ItemName: "Espada"}, "Espada"},
		{"Item Blank", Item{}, UntitledMarker},
		{"Loot", Loot{LootTable: []string{"Oro"}}, GenericTitle},
		{"Nil", nil, UntitledMarker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.node); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{Dialogue{}, "Diálogo"},
		{Combat{}, "Combate"},
		{Exploration{}, "Exploración"},
		{Skill{}, "Habilidad"},
		{Item{}, "Objeto"},
		{Loot{}, "Loot"},
	}
	for _, tt := range tests {
		if got := TypeLabel(tt.node); got != tt.want {
			t.Errorf("TypeLabel(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
	if got := TypeLabel(nil); got != "" {
		t.Errorf("TypeLabel(nil) = %q, want empty", got)
	}
}

func TestOutgoingEdges(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want []string
	}{
		{
			name: "Dialogue Filters Empty",
			node: Dialogue{Options: []Option{{NextNodeID: "a"}, {NextNodeID: ""}, {NextNodeID: "b"}}},
			want: []string{"a", "b"},
		},
		{
			name: "Combat Both",
			node: Combat{NextNodeID: "win", DefeatNodeID: "lose"},
			want: []string{"win", "lose"},
		},
		{
			name: "Combat Without Defeat",
			node: Combat{NextNodeID: "win"},
			want: []string{"win"},
		},
		{
			name: "Skill",
			node: Skill{SuccessNodeID: "ok", FailureNodeID: "ko"},
			want: []string{"ok", "ko"},
		},
		{
			name: "Exploration Keeps Duplicates",
			node: Exploration{Paths: []Path{{NextNodeID: "x"}, {NextNodeID: "x"}}},
			want: []string{"x", "x"},
		},
		{name: "Item", node: Item{NextNodeID: "n"}, want: []string{"n"}},
		{name: "Loot Empty", node: Loot{}, want: nil},
		{name: "Zero Dialogue", node: Dialogue{}, want: nil},
		{name: "Nil", node: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutgoingEdges(tt.node); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OutgoingEdges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"combat", "Combate", " COMBATE ", "Combat"} {
		k, err := ParseKind(in)
		if err != nil || k != KindCombat {
			t.Errorf("ParseKind(%q) = %q, %v", in, k, err)
		}
	}
	if k, err := ParseKind("exploración"); err != nil || k != KindExploration {
		t.Errorf("ParseKind(exploración) = %q, %v", k, err)
	}
	if _, err := ParseKind("boss"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(boss) err = %v, want ErrUnknownKind", err)
	}
}

func TestNewNodeDefaults(t *testing.T) {
	for _, k := range Kinds {
		n, err := NewNode(k, "id-"+string(k))
		if err != nil {
			t.Fatalf("NewNode(%s): %v", k, err)
		}
		if n.NodeID() != "id-"+string(k) || n.Kind() != k {
			t.Errorf("NewNode(%s) = %+v", k, n)
		}
		if len(OutgoingEdges(n)) != 0 {
			t.Errorf("NewNode(%s) has edges: %v", k, OutgoingEdges(n))
		}
	}
	s, _ := NewNode(KindSkill, "s")
	if s.(Skill).DifficultyClass != DefaultDifficultyClass {
		t.Errorf("skill DC = %d, want %d", s.(Skill).DifficultyClass, DefaultDifficultyClass)
	}
	if _, err := NewNode("boss", "x"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("NewNode(boss) err = %v", err)
	}
}

func TestAdventureCloneIsolated(t *testing.T) {
	adv := NewAdventure("adv", "T", "D")
	adv.Nodes["start"] = Dialogue{ID: "start", Options: []Option{{Text: "go", NextNodeID: "b"}}}

	clone := adv.Clone()
	d := clone.Nodes["start"].(Dialogue)
	d.Options[0].NextNodeID = "changed"
	clone.Nodes["new"] = Item{ID: "new"}

	orig := adv.Nodes["start"].(Dialogue)
	if orig.Options[0].NextNodeID != "b" {
		t.Errorf("clone shares option slice with original")
	}
	if _, ok := adv.Nodes["new"]; ok {
		t.Errorf("clone shares node map with original")
	}
}
