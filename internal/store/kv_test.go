package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Roundtrip(t *testing.T) {
	kv := NewMemory()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", `{"a":1}`))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)

	require.NoError(t, kv.Delete("k"))
	_, ok, _ = kv.Get("k")
	assert.False(t, ok)
}

func TestSQLiteKV_Roundtrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db.Pool))

	kv := NewSQLiteKV(db.Pool)

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("preferences", `{"minMatchScore":40}`))
	v, ok, err := kv.Get("preferences")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"minMatchScore":40}`, v)

	// overwrite
	require.NoError(t, kv.Set("preferences", `{"minMatchScore":60}`))
	v, _, _ = kv.Get("preferences")
	assert.Equal(t, `{"minMatchScore":60}`, v)

	require.NoError(t, kv.Delete("preferences"))
	_, ok, _ = kv.Get("preferences")
	assert.False(t, ok)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db.Pool))
	require.NoError(t, Migrate(db.Pool))
}

func TestDigestKey(t *testing.T) {
	assert.Equal(t, "digest_2024-01-09", DigestKey("2024-01-09"))
}
