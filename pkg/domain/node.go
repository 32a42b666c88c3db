package domain

// DefaultDifficultyClass is the DC given to new skill checks.
const DefaultDifficultyClass = 10

// DefaultSkillCategory is the category placeholder given to new skill checks.
const DefaultSkillCategory = "Percepción"

// Node is one unit of narrative content with zero or more outgoing edges.
// The set of implementations is closed: Dialogue, Combat, Exploration, Skill, Item and Loot.
type Node interface {
	// NodeID returns the identity of the node. It never changes after creation.
	NodeID() string
	// Kind returns the type tag of the variant.
	Kind() Kind

	sealed()
}

// Option is one choice offered by a Dialogue node.
// IsIdealPath and IsSkipOption are carried through persistence but not interpreted by the engine.
type Option struct {
	Text         string `json:"text" yaml:"text" mapstructure:"text"`
	NextNodeID   string `json:"nextNodeId" yaml:"nextNodeId" mapstructure:"nextNodeId"`
	IsIdealPath  bool   `json:"isIdealPath" yaml:"isIdealPath" mapstructure:"isIdealPath"`
	IsSkipOption bool   `json:"isSkipOption" yaml:"isSkipOption" mapstructure:"isSkipOption"`
}

// Path is one way out of an Exploration node.
type Path struct {
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	NextNodeID  string `json:"nextNodeId" yaml:"nextNodeId" mapstructure:"nextNodeId"`
}

// Enemy is a group of opponents in a Combat node.
type Enemy struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Type  string `json:"type" yaml:"type" mapstructure:"type"` // free-text category
	Count int    `json:"count" yaml:"count" mapstructure:"count"`
}

// Dialogue is a character speaking, followed by a list of options.
type Dialogue struct {
	ID            string   `json:"id" yaml:"id" mapstructure:"id"`
	CharacterName string   `json:"characterName" yaml:"characterName" mapstructure:"characterName"`
	DialogueText  string   `json:"dialogueText" yaml:"dialogueText" mapstructure:"dialogueText"`
	Options       []Option `json:"options" yaml:"options" mapstructure:"options"`
}

// Combat is an encounter with a win edge and an optional defeat edge.
type Combat struct {
	ID                  string  `json:"id" yaml:"id" mapstructure:"id"`
	LocationDescription string  `json:"locationDescription" yaml:"locationDescription" mapstructure:"locationDescription"`
	Enemies             []Enemy `json:"enemies" yaml:"enemies" mapstructure:"enemies"`
	NextNodeID          string  `json:"nextNodeId" yaml:"nextNodeId" mapstructure:"nextNodeId"`
	DefeatNodeID        string  `json:"defeatNodeId" yaml:"defeatNodeId" mapstructure:"defeatNodeId"`
}

// Exploration describes an area and the paths leaving it.
type Exploration struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Paths       []Path `json:"paths" yaml:"paths" mapstructure:"paths"`
}

// Skill is a check against a difficulty class with a success and a failure edge.
type Skill struct {
	ID              string `json:"id" yaml:"id" mapstructure:"id"`
	Name            string `json:"name" yaml:"name" mapstructure:"name"`
	Category        string `json:"category" yaml:"category" mapstructure:"category"`
	DifficultyClass int    `json:"difficultyClass" yaml:"difficultyClass" mapstructure:"difficultyClass"`
	Context         string `json:"context" yaml:"context" mapstructure:"context"`
	SuccessNodeID   string `json:"successNodeId" yaml:"successNodeId" mapstructure:"successNodeId"`
	FailureNodeID   string `json:"failureNodeId" yaml:"failureNodeId" mapstructure:"failureNodeId"`
}

// Item hands an object to the player and continues automatically.
type Item struct {
	ID              string `json:"id" yaml:"id" mapstructure:"id"`
	ItemName        string `json:"itemName" yaml:"itemName" mapstructure:"itemName"`
	ItemDescription string `json:"itemDescription" yaml:"itemDescription" mapstructure:"itemDescription"`
	ExpositionText  string `json:"expositionText" yaml:"expositionText" mapstructure:"expositionText"`
	NextNodeID      string `json:"nextNodeId" yaml:"nextNodeId" mapstructure:"nextNodeId"`
}

// Loot is a loot table followed by a single continuation.
type Loot struct {
	ID         string   `json:"id" yaml:"id" mapstructure:"id"`
	LootTable  []string `json:"lootTable" yaml:"lootTable" mapstructure:"lootTable"`
	NextNodeID string   `json:"nextNodeId" yaml:"nextNodeId" mapstructure:"nextNodeId"`
}

func (n Dialogue) NodeID() string    { return n.ID }
func (n Combat) NodeID() string      { return n.ID }
func (n Exploration) NodeID() string { return n.ID }
func (n Skill) NodeID() string       { return n.ID }
func (n Item) NodeID() string        { return n.ID }
func (n Loot) NodeID() string        { return n.ID }

func (Dialogue) Kind() Kind    { return KindDialogue }
func (Combat) Kind() Kind      { return KindCombat }
func (Exploration) Kind() Kind { return KindExploration }
func (Skill) Kind() Kind       { return KindSkill }
func (Item) Kind() Kind        { return KindItem }
func (Loot) Kind() Kind        { return KindLoot }

func (Dialogue) sealed()    {}
func (Combat) sealed()      {}
func (Exploration) sealed() {}
func (Skill) sealed()       {}
func (Item) sealed()        {}
func (Loot) sealed()        {}

// NewNode constructs the minimal instance of a kind.
// Slices are empty (not nil) so that new nodes survive a persistence round trip unchanged.
func NewNode(kind Kind, id string) (Node, error) {
	switch kind {
	case KindDialogue:
		return Dialogue{ID: id, Options: []Option{}}, nil
	case KindCombat:
		return Combat{ID: id, Enemies: []Enemy{}}, nil
	case KindExploration:
		return Exploration{ID: id, Paths: []Path{}}, nil
	case KindSkill:
		return Skill{ID: id, Category: DefaultSkillCategory, DifficultyClass: DefaultDifficultyClass}, nil
	case KindItem:
		return Item{ID: id}, nil
	case KindLoot:
		return Loot{ID: id, LootTable: []string{}}, nil
	}
	return nil, ErrUnknownKind
}

// CloneNode returns a copy of n that shares no slices with it.
// Nil slices become empty slices.
func CloneNode(n Node) Node {
	switch v := n.(type) {
	case Dialogue:
		v.Options = append([]Option{}, v.Options...)
		return v
	case Combat:
		v.Enemies = append([]Enemy{}, v.Enemies...)
		return v
	case Exploration:
		v.Paths = append([]Path{}, v.Paths...)
		return v
	case Loot:
		v.LootTable = append([]string{}, v.LootTable...)
		return v
	case Skill:
		return v
	case Item:
		return v
	}
	return n
}
