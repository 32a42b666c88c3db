package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/quest/internal/config"
	"github.com/aretw0/quest/internal/presentation/tui"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/persistence/middleware"
	"github.com/aretw0/quest/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playable() *domain.Adventure {
	adv := domain.NewAdventure("cave", "La Cueva", "")
	adv.Nodes["start"] = domain.Dialogue{ID: "start", CharacterName: "Guía", DialogueText: "Entra.", Options: []domain.Option{
		{Text: "Avanzar", NextNodeID: "sword"},
	}}
	adv.Nodes["sword"] = domain.Item{ID: "sword", ItemName: "Espada", ItemDescription: "Afilada"}
	return adv
}

func TestRunPlay(t *testing.T) {
	ctx := context.Background()
	adv := playable()
	sess := session.New(ctx, memory.NewStore(adv), adv, session.Settings{})

	var out bytes.Buffer
	in := strings.NewReader("7\n1\nhola\n1\nq\n")
	require.NoError(t, runPlay(ctx, sess, in, &out, tui.PlainRenderer))

	got := out.String()
	assert.Contains(t, got, "**Guía:** Entra.")
	assert.Contains(t, got, "1. Avanzar")
	assert.Contains(t, got, "no such choice")
	assert.Contains(t, got, "**Espada**: Afilada")
	assert.Contains(t, got, `Unknown command "hola"`)
	assert.Contains(t, got, "Fin de la aventura")
	assert.Equal(t, []string{"start", "sword"}, sess.History())
}

func TestRunPlay_RestartAndGoTo(t *testing.T) {
	ctx := context.Background()
	adv := playable()
	sess := session.New(ctx, memory.NewStore(adv), adv, session.Settings{})

	var out bytes.Buffer
	in := strings.NewReader("g sword\nr\n")
	require.NoError(t, runPlay(ctx, sess, in, &out, tui.PlainRenderer))

	node, ok := sess.CurrentNode()
	require.True(t, ok)
	assert.Equal(t, "start", node.NodeID())
	assert.Equal(t, 3, strings.Count(out.String(), "> "))
}

func TestBuildApp_Memory(t *testing.T) {
	a, err := buildApp(config.Config{Store: config.StoreMemory, LogLevel: "error", Filler: config.FillerMint})
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	sess, err := a.Manager.Create(ctx, "Nueva", "")
	require.NoError(t, err)

	all, err := a.Manager.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, sess.ID(), all[0].ID)

	var out bytes.Buffer
	require.NoError(t, printGraph(ctx, a.Manager, sess.ID(), &out))
	assert.Contains(t, out.String(), "start((")
}

func TestBuildApp_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.db")
	a, err := buildApp(config.Config{Store: config.StoreSQLite, SQLitePath: path, LogLevel: "error", Filler: config.FillerEmpty})
	require.NoError(t, err)

	ctx := context.Background()
	sess, err := a.Manager.Create(ctx, "Persistida", "")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := buildApp(config.Config{Store: config.StoreSQLite, SQLitePath: path, LogLevel: "error", Filler: config.FillerEmpty})
	require.NoError(t, err)
	defer b.Close()
	loaded, err := b.Store.Load(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, "Persistida", loaded.Title)
}

func TestBuildApp_ReadOnly(t *testing.T) {
	ctx := context.Background()
	a, err := buildApp(config.Config{Store: config.StoreMemory, LogLevel: "error", Filler: config.FillerEmpty, ReadOnly: true})
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Manager.Create(ctx, "Bloqueada", "")
	assert.ErrorIs(t, err, middleware.ErrReadOnly)

	assert.ErrorIs(t, a.Import(ctx, playable()), middleware.ErrReadOnly)
}

func TestBuildApp_BadLogLevel(t *testing.T) {
	_, err := buildApp(config.Config{Store: config.StoreMemory, LogLevel: "loud"})
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	adv := playable()
	for _, tt := range []struct{ format, file string }{
		{"yaml", "cave.yaml"},
		{"json", "cave.json"},
	} {
		t.Run(tt.format, func(t *testing.T) {
			data, err := encode(adv, tt.format)
			require.NoError(t, err)
			got, err := decode(data, tt.file)
			require.NoError(t, err)
			assert.Equal(t, adv, got)
		})
	}

	_, err := encode(adv, "xml")
	assert.Error(t, err)
}

func TestPrintAdventure(t *testing.T) {
	ctx := context.Background()
	adv := playable()
	adv.Nodes["lost"] = domain.Loot{ID: "lost", LootTable: []string{}, NextNodeID: "nowhere"}
	sess := session.New(ctx, memory.NewStore(adv), adv, session.Settings{})

	var out bytes.Buffer
	require.NoError(t, printAdventure(&out, sess))
	got := out.String()
	assert.Contains(t, got, "La Cueva (cave)")
	assert.Contains(t, got, "start *")
	assert.Contains(t, got, "points at missing node nowhere")
	assert.Contains(t, got, "lost has no inbound edge")
}

func TestMCPCommand_UnknownTransport(t *testing.T) {
	rootCmd.SetArgs([]string{"mcp", "--store", "memory", "--log-level", "error", "--transport", "pigeon"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "unknown transport")
}
