package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAdventureStoreContract runs a suite of tests to verify that an AdventureStore implementation
// adheres to the defined interface contract.
func RunAdventureStoreContract(t *testing.T, store AdventureStore) {
	ctx := context.Background()
	advID := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		adv := domain.NewAdventure(advID, "Contrato", "Prueba")
		adv.Nodes["hall"] = domain.Exploration{
			ID:          "hall",
			Description: "Salón",
			Paths:       []domain.Path{{Description: "Volver", NextNodeID: domain.StartNodeID}},
		}
		adv.Nodes["fight"] = domain.Combat{
			ID:         "fight",
			Enemies:    []domain.Enemy{{Name: "Orco", Type: "Bruto", Count: 2}},
			NextNodeID: "hall",
		}

		err := store.Save(ctx, adv)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, advID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, adv, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		adv := domain.NewAdventure(advID, "Primero", "")
		require.NoError(t, store.Save(ctx, adv))

		adv.Title = "Segundo"
		require.NoError(t, store.Save(ctx, adv))

		loaded, err := store.Load(ctx, advID)
		require.NoError(t, err)
		assert.Equal(t, "Segundo", loaded.Title)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+advID)
		assert.ErrorIs(t, err, domain.ErrAdventureNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewAdventure(advID, "T", "D")))

		err := store.Delete(ctx, advID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, advID)
		assert.ErrorIs(t, err, domain.ErrAdventureNotFound, "Load after Delete should return ErrAdventureNotFound")

		assert.NoError(t, store.Delete(ctx, advID), "Deleting twice is not an error")
	})

	t.Run("LoadAll", func(t *testing.T) {
		id1 := advID + "-1"
		id2 := advID + "-2"
		require.NoError(t, store.Save(ctx, domain.NewAdventure(id1, "Uno", "")))
		require.NoError(t, store.Save(ctx, domain.NewAdventure(id2, "Dos", "")))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		all, err := store.LoadAll(ctx)
		require.NoError(t, err)

		titles := make(map[string]string)
		for _, adv := range all {
			titles[adv.ID] = adv.Title
		}
		assert.Equal(t, "Uno", titles[id1])
		assert.Equal(t, "Dos", titles[id2])
	})
}
