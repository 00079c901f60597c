package saved

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/store"
)

func TestSave_IdempotentAndOrdered(t *testing.T) {
	kv := store.NewMemory()

	require.NoError(t, Save(kv, "a"))
	require.NoError(t, Save(kv, "b"))
	require.NoError(t, Save(kv, "a"))

	assert.Equal(t, []string{"a", "b"}, List(kv))
	assert.True(t, IsSaved(kv, "a"))
	assert.False(t, IsSaved(kv, "c"))
}

func TestUnsave(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, Save(kv, "a"))
	require.NoError(t, Save(kv, "b"))

	require.NoError(t, Unsave(kv, "a"))
	assert.Equal(t, []string{"b"}, List(kv))

	// removing an id that isn't there is fine
	require.NoError(t, Unsave(kv, "zzz"))
	assert.Equal(t, []string{"b"}, List(kv))
}

func TestList_MalformedResets(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(store.KeySavedIDs, `{"oops":`))
	assert.Empty(t, List(kv))
}
