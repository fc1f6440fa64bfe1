package dialogue

import (
	"context"
	"testing"

	"neobook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySlotStoreRoundTrip(t *testing.T) {
	store := NewInMemorySlotStore()
	ctx := context.Background()

	name := "Alice"
	email := "alice@example.com"
	require.NoError(t, store.Set(ctx, "s1", &models.SlotSet{Name: &name, Email: &email}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	v, ok := got.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Alice", v)
	v, ok = got.Get("email")
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", v)
}

func TestInMemorySlotStoreUnknownSessionIsEmpty(t *testing.T) {
	store := NewInMemorySlotStore()

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestInMemorySlotStoreClear(t *testing.T) {
	store := NewInMemorySlotStore()
	ctx := context.Background()

	name := "Alice"
	require.NoError(t, store.Set(ctx, "s1", &models.SlotSet{Name: &name, Confirmed: true}))
	require.NoError(t, store.Clear(ctx, "s1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.False(t, got.Confirmed)
}

func TestInMemorySlotStoreReturnsCopies(t *testing.T) {
	store := NewInMemorySlotStore()
	ctx := context.Background()

	name := "Alice"
	require.NoError(t, store.Set(ctx, "s1", &models.SlotSet{Name: &name}))

	first, _ := store.Get(ctx, "s1")
	first.Confirmed = true

	second, _ := store.Get(ctx, "s1")
	assert.False(t, second.Confirmed)
}
