package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoresquad/internal/models"
)

func TestLocalStore_SearchHistoryCap(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(NewMemoryStore())

	for _, loc := range []string{"Pasir Ris", "Changi", "Sentosa", "East Coast", "Punggol"} {
		require.NoError(t, store.AddSearchLocation(ctx, loc))
	}

	history, err := store.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Punggol", "East Coast", "Sentosa", "Changi", "Pasir Ris"}, history)

	// A sixth distinct location drops the oldest.
	require.NoError(t, store.AddSearchLocation(ctx, "West Coast"))

	history, err = store.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"West Coast", "Punggol", "East Coast", "Sentosa", "Changi"}, history)
}

func TestLocalStore_SearchHistoryNoDuplicates(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(NewMemoryStore())

	for i := 0; i < 4; i++ {
		require.NoError(t, store.AddSearchLocation(ctx, "Changi"))
	}
	require.NoError(t, store.AddSearchLocation(ctx, "Sentosa"))
	require.NoError(t, store.AddSearchLocation(ctx, "  Changi "))
	require.NoError(t, store.AddSearchLocation(ctx, "   "))

	history, err := store.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Changi", "Sentosa"}, history)
}

func TestLocalStore_InvalidJSONReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(ctx, SignupsKey, "{not json"))
	require.NoError(t, kv.Set(ctx, ActionsKey, "null"))
	require.NoError(t, kv.Set(ctx, SearchHistoryKey, `{"a": 1}`))

	store := NewLocalStore(kv)

	signups, err := store.Signups(ctx)
	require.NoError(t, err)
	assert.NotNil(t, signups)
	assert.Empty(t, signups)

	actions, err := store.Actions(ctx)
	require.NoError(t, err)
	assert.Empty(t, actions)

	history, err := store.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	require.NoError(t, store.AddSearchLocation(ctx, "Changi"))
	history, err = store.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Changi"}, history)
}

func TestLocalStore_AppendsSignupsAndActions(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	store := NewLocalStore(kv)
	ts := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.AppendSignup(ctx, models.Signup{ID: "a", Name: "Alex", Email: "alex@example.com", Beach: "Changi", Timestamp: ts}))
	require.NoError(t, store.AppendSignup(ctx, models.Signup{ID: "b", Name: "Sam", Email: "sam@example.com", Timestamp: ts}))
	require.NoError(t, store.AppendAction(ctx, models.UserAction{Action: models.ActionJoinCrew, ItemID: 2, Timestamp: ts}))

	signups, err := store.Signups(ctx)
	require.NoError(t, err)
	require.Len(t, signups, 2)
	assert.Equal(t, "Alex", signups[0].Name)
	assert.Equal(t, "Sam", signups[1].Name)

	actions, err := store.Actions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "join_crew", actions[0].Action)
	assert.Equal(t, 2, actions[0].ItemID)

	raw, found, err := kv.Get(ctx, ActionsKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"action":"join_crew","itemId":2,"timestamp":"2025-01-15T09:00:00Z"}]`, raw)
}

func TestLocalStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.AppendAction(ctx, models.UserAction{Action: models.ActionJoinEvent, ItemID: i})
		}(i)
	}
	wg.Wait()

	actions, err := store.Actions(ctx)
	require.NoError(t, err)
	assert.Len(t, actions, 50)
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (failingKV) Set(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestLocalStore_PropagatesStoreErrors(t *testing.T) {
	store := NewLocalStore(failingKV{})

	_, err := store.SearchHistory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("failed to read %s", SearchHistoryKey))

	assert.Error(t, store.AddSearchLocation(context.Background(), "Changi"))
	assert.Error(t, store.AppendSignup(context.Background(), models.Signup{}))
}
