package graph_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() graph.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("node-%d", n)
	}
}

func TestStore_GetAndUpsert(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))

	_, ok := s.Get("missing")
	assert.False(t, ok)

	item := domain.Item{ID: "key", ItemName: "Llave", NextNodeID: "start"}
	adv, err := s.Upsert(item)
	require.NoError(t, err)
	assert.Equal(t, item, adv.Nodes["key"])

	got, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, item, got)
}

func TestStore_UpsertIdempotent(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))
	node := domain.Exploration{ID: "x", Description: "Cueva", Paths: []domain.Path{{Description: "Salir", NextNodeID: "start"}}}

	first, err := s.Upsert(node)
	require.NoError(t, err)
	second, err := s.Upsert(node)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_UpsertRejectsInvalid(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))

	_, err := s.Upsert(nil)
	assert.Error(t, err)
	_, err = s.Upsert(domain.Loot{})
	assert.Error(t, err)
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))
	before := s.Adventure()

	_, err := s.Upsert(domain.Item{ID: "i"})
	require.NoError(t, err)

	assert.Len(t, before.Nodes, 1, "earlier snapshot must not see later edits")
	assert.Len(t, s.Adventure().Nodes, 2)
}

func TestStore_RemoveProtectsStart(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))
	before := s.Adventure()

	adv, err := s.Remove(domain.StartNodeID)
	assert.ErrorIs(t, err, domain.ErrStartNodeProtected)
	assert.Equal(t, before.Nodes, adv.Nodes)
}

func TestStore_RemoveLeavesDanglingEdges(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))
	_, err := s.Upsert(domain.Dialogue{ID: domain.StartNodeID, Options: []domain.Option{{Text: "ir", NextNodeID: "b"}}})
	require.NoError(t, err)
	_, err = s.Upsert(domain.Item{ID: "b", NextNodeID: "c"})
	require.NoError(t, err)
	_, err = s.Upsert(domain.Loot{ID: "c"})
	require.NoError(t, err)

	adv, err := s.Remove("b")
	require.NoError(t, err)

	assert.NotContains(t, adv.Nodes, "b")
	assert.Contains(t, adv.Nodes, "c", "children are not cascaded")
	start := adv.Nodes[domain.StartNodeID].(domain.Dialogue)
	assert.Equal(t, "b", start.Options[0].NextNodeID, "parent edges are not rewritten")

	_, err = s.Remove("never-existed")
	assert.NoError(t, err)
}

func TestStore_Create(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"), graph.WithIDGenerator(sequentialIDs()))

	for _, k := range domain.Kinds {
		id, err := s.Create(k)
		require.NoError(t, err)
		n, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, k, n.Kind())
	}
	assert.Len(t, s.Adventure().Nodes, len(domain.Kinds)+1)

	_, err := s.Create("boss")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestStore_NodesStartFirst(t *testing.T) {
	s := graph.NewStore(domain.NewAdventure("a", "T", "D"))
	_, _ = s.Upsert(domain.Item{ID: "a"})
	_, _ = s.Upsert(domain.Item{ID: "z"})

	var ids []string
	for _, n := range s.Nodes() {
		ids = append(ids, n.NodeID())
	}
	assert.Equal(t, []string{domain.StartNodeID, "a", "z"}, ids)
}
