package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePlayerLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetPlayer(ctx, "p1")
	assert.ErrorIs(t, err, interfaces.ErrPlayerNotFound)

	player := entities.Player{Id: "p1", Name: "Kim", Tier: entities.TierAce, Rating: 1000}
	require.NoError(t, store.PutPlayer(ctx, player))

	got, err := store.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, player, got)

	newName := "Kim Jr."
	newRating := 1024
	require.NoError(t, store.UpdatePlayer(ctx, "p1", interfaces.PlayerUpdateOptions{
		Name:   &newName,
		Rating: &newRating,
	}))
	got, err = store.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Kim Jr.", got.Name)
	assert.Equal(t, 1024, got.Rating)
	assert.Equal(t, entities.TierAce, got.Tier, "fields not in the update stay put")

	require.NoError(t, store.DeletePlayer(ctx, "p1"))
	_, err = store.GetPlayer(ctx, "p1")
	assert.ErrorIs(t, err, interfaces.ErrPlayerNotFound)
}

func TestMemoryStoreUpdateMissingPlayer(t *testing.T) {
	store := NewMemoryStore()
	name := "Kim"
	err := store.UpdatePlayer(context.Background(), "missing", interfaces.PlayerUpdateOptions{Name: &name})
	assert.ErrorIs(t, err, interfaces.ErrPlayerNotFound)
}

func TestMemoryStoreMatchOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.PutMatch(ctx, entities.Match{
			Id:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	matches, err := store.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "c", matches[0].Id)
	assert.Equal(t, "a", matches[2].Id)

	require.NoError(t, store.DeleteMatch(ctx, "b"))
	matches, err = store.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	_, err = store.GetMatch(ctx, "b")
	assert.ErrorIs(t, err, interfaces.ErrMatchNotFound)
}
