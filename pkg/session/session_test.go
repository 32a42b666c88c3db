package session_test

import (
	"context"
	"testing"

	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/play"
	"github.com/aretw0/quest/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAdventure() *domain.Adventure {
	adv := domain.NewAdventure("cueva", "La Cueva", "Una aventura corta")
	adv.Nodes = map[string]domain.Node{
		"start": domain.Dialogue{ID: "start", CharacterName: "Guía", Options: []domain.Option{
			{Text: "Entrar", NextNodeID: "hall"},
		}},
		"hall": domain.Exploration{ID: "hall", Description: "Un salón oscuro", Paths: []domain.Path{
			{Description: "Luchar", NextNodeID: "fight"},
			{Description: "Huir", NextNodeID: "nowhere"},
		}},
		"fight": domain.Combat{ID: "fight", Enemies: []domain.Enemy{}, NextNodeID: "start"},
	}
	return adv
}

func openSample(t *testing.T, opts ...session.Option) (*session.Session, *memory.Store) {
	t.Helper()
	store := memory.NewStore(sampleAdventure())
	opts = append([]session.Option{session.WithIDGenerator(sequence("new"))}, opts...)
	mgr := session.NewManager(store, opts...)
	sess, err := mgr.Open(context.Background(), "cueva")
	require.NoError(t, err)
	return sess, store
}

func TestSession_Playback(t *testing.T) {
	ctx := context.Background()
	sess, _ := openSample(t)

	cur, ok := sess.CurrentNode()
	require.True(t, ok)
	assert.Equal(t, "start", cur.NodeID())
	assert.Equal(t, []play.Choice{{Label: "Entrar", Target: "hall"}}, sess.Choices())

	n, err := sess.Choose(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "hall", n.NodeID())

	n, err = sess.Navigate(ctx, "nowhere")
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.True(t, sess.Ended())
	assert.Empty(t, sess.Choices())

	_, err = sess.Navigate(ctx, "start")
	assert.ErrorIs(t, err, play.ErrEnded)

	n, ok = sess.Restart(ctx)
	require.True(t, ok)
	assert.Equal(t, "start", n.NodeID())
	assert.Equal(t, []string{"start"}, sess.History())
}

func TestSession_EditFocus(t *testing.T) {
	ctx := context.Background()
	sess, _ := openSample(t)

	_, err := sess.ChangeNodeType(ctx, domain.KindCombat)
	assert.ErrorIs(t, err, session.ErrNotEditing)
	_, err = sess.AddChildAndLink(ctx, "x")
	assert.ErrorIs(t, err, session.ErrNotEditing)

	assert.ErrorIs(t, sess.EnterEdit("ghost"), domain.ErrNodeNotFound)

	require.NoError(t, sess.EnterEdit("hall"))
	n, ok := sess.EditingNode()
	require.True(t, ok)
	assert.Equal(t, "hall", n.NodeID())

	sess.ExitEdit()
	_, ok = sess.EditingNode()
	assert.False(t, ok)
}

func TestSession_ChangeNodeTypePersists(t *testing.T) {
	ctx := context.Background()
	sess, store := openSample(t)

	require.NoError(t, sess.EnterEdit("start"))
	n, err := sess.ChangeNodeType(ctx, domain.KindCombat)
	require.NoError(t, err)

	combat := n.(domain.Combat)
	assert.Equal(t, "hall", combat.NextNodeID)

	saved, err := store.Load(ctx, "cueva")
	require.NoError(t, err)
	assert.Equal(t, combat, saved.Nodes["start"])
}

func TestSession_AddChildAndLink(t *testing.T) {
	ctx := context.Background()
	sess, store := openSample(t)

	require.NoError(t, sess.EnterEdit("hall"))
	id, err := sess.AddChildAndLink(ctx, "go north")
	require.NoError(t, err)
	assert.Equal(t, "new-1", id)

	focus, _ := sess.EditingNode()
	assert.Equal(t, "hall", focus.NodeID(), "focus stays on the parent")

	saved, err := store.Load(ctx, "cueva")
	require.NoError(t, err)
	hall := saved.Nodes["hall"].(domain.Exploration)
	require.Len(t, hall.Paths, 3)
	assert.Equal(t, domain.Path{Description: "go north", NextNodeID: "new-1"}, hall.Paths[2])
	assert.IsType(t, domain.Dialogue{}, saved.Nodes["new-1"])
}

func TestSession_DeleteNode(t *testing.T) {
	ctx := context.Background()
	sess, store := openSample(t)

	assert.ErrorIs(t, sess.DeleteNode(ctx, "start"), domain.ErrStartNodeProtected)

	require.NoError(t, sess.EnterEdit("fight"))
	require.NoError(t, sess.DeleteNode(ctx, "fight"))

	_, ok := sess.EditingNode()
	assert.False(t, ok, "deleting the focused node clears the focus")

	saved, err := store.Load(ctx, "cueva")
	require.NoError(t, err)
	_, ok = saved.Node("fight")
	assert.False(t, ok)

	report := sess.Diagnose()
	assert.Contains(t, report.Dangling, editor.Edge{From: "hall", Field: "paths[0]", Target: "fight"})
}

func TestSession_UpdateNodeAndMetadata(t *testing.T) {
	ctx := context.Background()
	sess, store := openSample(t)

	require.NoError(t, sess.UpdateNode(ctx, domain.Item{ID: "sword", ItemName: "Espada", NextNodeID: "start"}))
	require.NoError(t, sess.UpdateMetadata(ctx, "Nuevo título", "Nueva descripción"))

	saved, err := store.Load(ctx, "cueva")
	require.NoError(t, err)
	assert.Equal(t, "Nuevo título", saved.Title)
	assert.Equal(t, "Nueva descripción", saved.Description)
	assert.Equal(t, "Espada", domain.Title(saved.Nodes["sword"]))

	assert.Error(t, sess.UpdateNode(ctx, nil))
}

func TestSession_QueriesAndLayout(t *testing.T) {
	sess, _ := openSample(t)

	parents := sess.Parents("start")
	require.Len(t, parents, 1)
	assert.Equal(t, "fight", parents[0].NodeID())

	nodes := sess.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "start", nodes[0].NodeID())

	placements := sess.Layout()
	assert.Equal(t, 0, placements["start"].Level)
	assert.Equal(t, 1, placements["hall"].Level)
	assert.Equal(t, 2, placements["fight"].Level)
}

func TestSession_Hooks(t *testing.T) {
	ctx := context.Background()
	var entered []string
	var edits []string
	hooks := domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) { entered = append(entered, e.NodeID) },
		OnEdit:      func(_ context.Context, e *domain.EditEvent) { edits = append(edits, e.Command) },
	}
	sess, _ := openSample(t, session.WithLifecycleHooks(hooks))

	_, err := sess.Navigate(ctx, "hall")
	require.NoError(t, err)
	_, err = sess.CreateDetached(ctx, domain.KindLoot)
	require.NoError(t, err)
	_ = sess.DeleteNode(ctx, "start")

	assert.Equal(t, []string{"start", "hall"}, entered)
	assert.Equal(t, []string{"create_detached", "delete_node"}, edits)
}

func TestSession_FillerPolicy(t *testing.T) {
	ctx := context.Background()
	sess, _ := openSample(t, session.WithFillerPolicy(editor.FillerMintID))

	require.NoError(t, sess.EnterEdit("hall"))
	n, err := sess.ChangeNodeType(ctx, domain.KindSkill)
	require.NoError(t, err)

	skill := n.(domain.Skill)
	assert.Equal(t, "fight", skill.SuccessNodeID)
	assert.Equal(t, "new-1", skill.FailureNodeID)
}
