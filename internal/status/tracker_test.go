package status

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/store"
)

func newTestTracker() *Tracker {
	t := New(store.NewMemory())
	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	t.Now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return t
}

func TestGet_DefaultsToNotApplied(t *testing.T) {
	tr := newTestTracker()
	assert.Equal(t, domain.StatusNotApplied, tr.Get("nope"))
}

func TestSet_UpsertsAndAppendsHistory(t *testing.T) {
	tr := newTestTracker()

	require.NoError(t, tr.Set("j1", domain.StatusApplied))
	assert.Equal(t, domain.StatusApplied, tr.Get("j1"))

	h := tr.History()
	require.Len(t, h, 1)
	assert.Equal(t, "j1", h[0].ID)
	assert.Equal(t, domain.StatusApplied, h[0].Status)
	_, err := time.Parse(time.RFC3339, h[0].Timestamp)
	assert.NoError(t, err)
}

func TestSet_SameStatusStillAppends(t *testing.T) {
	tr := newTestTracker()
	require.NoError(t, tr.Set("j1", domain.StatusApplied))
	require.NoError(t, tr.Set("j1", domain.StatusApplied))
	assert.Len(t, tr.History(), 2)
}

func TestSet_RejectsUnknownStatus(t *testing.T) {
	tr := newTestTracker()
	err := tr.Set("j1", domain.JobStatus("Ghosted"))
	require.Error(t, err)
	assert.Empty(t, tr.History())
	assert.Equal(t, domain.StatusNotApplied, tr.Get("j1"))
}

func TestHistory_NewestFirstAndCapped(t *testing.T) {
	tr := newTestTracker()

	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("j%d", i)
		require.NoError(t, tr.Set(id, domain.StatusApplied))
	}

	h := tr.History()
	require.Len(t, h, 50)
	// newest first: the last write is j59, the oldest surviving is j10
	assert.Equal(t, "j59", h[0].ID)
	assert.Equal(t, "j10", h[49].ID)
	assert.True(t, h[0].Timestamp >= h[49].Timestamp)
}

func TestMap_UnreadableResets(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(store.KeyStatusMap, "💥 not json"))
	tr := New(kv)
	assert.Empty(t, tr.Map())
	assert.Equal(t, domain.StatusNotApplied, tr.Get("j1"))
}
