package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/quest/internal/presentation/graph"
	"github.com/aretw0/quest/pkg/domain"
)

func sample() *domain.Adventure {
	adv := domain.NewAdventure("adv", "T", "")
	adv.Nodes = map[string]domain.Node{
		"start": domain.Dialogue{ID: "start", CharacterName: "Narrador", Options: []domain.Option{
			{Text: "Pelear", NextNodeID: "fight-1"},
			{Text: "Buscar", NextNodeID: "gone"},
		}},
		"fight-1": domain.Combat{ID: "fight-1", LocationDescription: "Puente", NextNodeID: "roll", DefeatNodeID: "start"},
		"roll":    domain.Skill{ID: "roll", Name: "Trepar", SuccessNodeID: "bag", FailureNodeID: ""},
		"bag":     domain.Loot{ID: "bag", NextNodeID: "sword"},
		"sword":   domain.Item{ID: "sword", ItemName: "Espada \"Filo\""},
		"area":    domain.Exploration{ID: "area", Description: "Bosque"},
	}
	return adv
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Shapes",
			contains: []string{
				`start(("Narrador<br/><i>Diálogo</i>"))`,
				`fight_1{{"Puente<br/><i>Combate</i>"}}`,
				`roll{"Trepar<br/><i>Habilidad</i>"}`,
				`bag[("Nodo<br/><i>Loot</i>")]`,
				`area[/"Bosque<br/><i>Exploración</i>"/]`,
			},
		},
		{
			name: "Labelled Edges",
			contains: []string{
				`start -- "Pelear" --> fight_1`,
				`fight_1 -- "Victoria" --> roll`,
				`fight_1 -- "Derrota" --> start`,
				`roll -- "Éxito" --> bag`,
				`bag -- "Continuar" --> sword`,
			},
		},
		{
			name: "Missing Targets",
			contains: []string{
				`start -. "Buscar" .-> gone`,
				`class gone missing;`,
			},
		},
		{
			name: "Quotes Escaped",
			contains: []string{
				`Espada #quot;Filo#quot;`,
			},
		},
		{
			name:    "Overlay",
			overlay: &graph.Overlay{VisitedNodes: []string{"start", "fight-1", "start"}, CurrentNode: "roll"},
			contains: []string{
				"class start visited;",
				"class fight_1 visited;",
				"class roll current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(sample(), tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() missing %q\nGot:\n%s", want, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_EveryEdge(t *testing.T) {
	adv := sample()
	got := graph.GenerateMermaid(adv, nil)

	for _, n := range adv.Nodes {
		for _, target := range domain.OutgoingEdges(n) {
			if !strings.Contains(got, "> "+strings.ReplaceAll(target, "-", "_")+"\n") {
				t.Errorf("edge %s -> %s not rendered", n.NodeID(), target)
			}
		}
	}
	if strings.Count(got, "visited;") != 0 {
		t.Errorf("no overlay expected")
	}
}

func TestGenerateMermaid_StartFirst(t *testing.T) {
	got := graph.GenerateMermaid(sample(), nil)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 || !strings.HasPrefix(strings.TrimSpace(lines[1]), "start((") {
		t.Errorf("expected start node first, got %q", lines[1])
	}
}
