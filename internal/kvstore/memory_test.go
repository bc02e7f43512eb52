package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "userDetails")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, "userDetails", `{"name":"Demo"}`))

	val, ok, err := store.Get(ctx, "userDetails")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"Demo"}`, val)

	assert.NoError(t, store.Remove(ctx, "userDetails"))

	_, ok, err = store.Get(ctx, "userDetails")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_RemoveAbsentIsNoop(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Remove(context.Background(), "never-set"))
}
