package domain

// StartNodeID is the ID of the node seeded into every new adventure.
const StartNodeID = "start"

// Seed content of the start node.
const (
	SeedCharacterName = "Narrador"
	SeedDialogueText  = "Aquí comienza tu nueva historia..."
)

// Adventure is the aggregate root of a story graph.
type Adventure struct {
	// ID is generated at creation and never changes.
	ID          string
	Title       string
	Description string

	// Nodes maps node ID to node. Keys always equal the node's own NodeID().
	Nodes map[string]Node

	// StartNodeID references a key of Nodes whenever Nodes is non-empty.
	StartNodeID string
}

// NewAdventure creates an adventure seeded with a single start Dialogue node.
func NewAdventure(id, title, description string) *Adventure {
	start := Dialogue{
		ID:            StartNodeID,
		CharacterName: SeedCharacterName,
		DialogueText:  SeedDialogueText,
		Options:       []Option{},
	}
	return &Adventure{
		ID:          id,
		Title:       title,
		Description: description,
		Nodes:       map[string]Node{start.ID: start},
		StartNodeID: start.ID,
	}
}

// Node looks up a node by ID. The empty ID is never found.
func (a *Adventure) Node(id string) (Node, bool) {
	if a == nil || id == "" {
		return nil, false
	}
	n, ok := a.Nodes[id]
	return n, ok
}

// StartNode returns the start node, if it exists.
func (a *Adventure) StartNode() (Node, bool) {
	if a == nil {
		return nil, false
	}
	return a.Node(a.StartNodeID)
}

// Clone returns a deep copy of the adventure.
// Mutations are applied to a clone and swapped in as one unit.
func (a *Adventure) Clone() *Adventure {
	if a == nil {
		return nil
	}
	next := *a
	next.Nodes = make(map[string]Node, len(a.Nodes))
	for id, n := range a.Nodes {
		next.Nodes[id] = CloneNode(n)
	}
	return &next
}
