package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunAdventureStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	adv := domain.NewAdventure("iso", "Original", "")
	store := memory.NewStore(adv)

	adv.Title = "Mutated after seed"

	loaded, err := store.Load(ctx, "iso")
	require.NoError(t, err)
	assert.Equal(t, "Original", loaded.Title)

	loaded.Nodes["extra"] = domain.Loot{ID: "extra"}

	again, err := store.Load(ctx, "iso")
	require.NoError(t, err)
	_, ok := again.Nodes["extra"]
	assert.False(t, ok, "mutating a loaded copy must not leak into the store")
}

func TestMemoryStore_LoadAllOrdered(t *testing.T) {
	store := memory.NewStore(
		domain.NewAdventure("b", "B", ""),
		domain.NewAdventure("a", "A", ""),
	)

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}
