package digest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/store"
)

func manyJobs(n int) []domain.Job {
	out := make([]domain.Job, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Job{
			ID:            fmt.Sprintf("j%d", i),
			Title:         fmt.Sprintf("Engineer %d", i),
			Company:       "Acme",
			PostedDaysAgo: i % 7,
		})
	}
	return out
}

func TestGenerate_EmptyInput(t *testing.T) {
	out := Generate(nil, nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	out = Generate([]domain.Job{}, &domain.Preferences{})
	assert.Empty(t, out)
}

func TestGenerate_CapsAtTen(t *testing.T) {
	out := Generate(manyJobs(25), nil)
	assert.Len(t, out, 10)
}

func TestGenerate_OrderingAndTiebreak(t *testing.T) {
	prefs := domain.Preferences{RoleKeywords: []string{"react"}}
	in := []domain.Job{
		{ID: "old-match", Title: "React Developer", PostedDaysAgo: 6},
		{ID: "no-match", Title: "Accountant", PostedDaysAgo: 9},
		{ID: "fresh-match", Title: "React Developer", PostedDaysAgo: 0},
	}

	out := Generate(in, &prefs)
	require.Len(t, out, 3)

	// non-increasing by score
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
	// equal scores: fresher first
	assert.Equal(t, "fresh-match", out[0].ID)
	assert.Equal(t, "old-match", out[1].ID)
	assert.Equal(t, "no-match", out[2].ID)
}

func TestGenerate_NoScoreFloor(t *testing.T) {
	// nil prefs score everything zero; the digest still fills up
	out := Generate(manyJobs(5), nil)
	require.Len(t, out, 5)
	for _, j := range out {
		assert.Equal(t, 0, j.Score)
	}
}

func TestSaveGet_Roundtrip(t *testing.T) {
	kv := store.NewMemory()
	jobs := Generate(manyJobs(12), nil)

	require.NoError(t, Save(kv, "2024-01-02", jobs))
	got, found := Get(kv, "2024-01-02")
	require.True(t, found)
	assert.Equal(t, jobs, got)

	// regeneration overwrites
	fewer := jobs[:3]
	require.NoError(t, Save(kv, "2024-01-02", fewer))
	got, found = Get(kv, "2024-01-02")
	require.True(t, found)
	assert.Len(t, got, 3)
}

func TestGet_AbsentVsGeneratedEmpty(t *testing.T) {
	kv := store.NewMemory()

	_, found := Get(kv, "2024-01-01")
	assert.False(t, found, "never generated must read as absent")

	require.NoError(t, Save(kv, "2024-01-01", []domain.ScoredJob{}))
	got, found := Get(kv, "2024-01-01")
	require.True(t, found)
	assert.Empty(t, got)
}

func TestGet_UnreadableIsAbsent(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(store.DigestKey("2024-03-04"), "{not json"))
	_, found := Get(kv, "2024-03-04")
	assert.False(t, found)
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, 1, 9, 9, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-09", DateKey(d))
}

func TestFormatText(t *testing.T) {
	jobs := []domain.ScoredJob{
		{Job: domain.Job{Title: "React Developer", Company: "BrightApps", Location: "Bengaluru", Mode: domain.ModeRemote, ApplyURL: "https://example.com/a"}, Score: 85},
		{Job: domain.Job{Title: "QA Engineer", Company: "Finch Labs", Location: "Pune", Mode: domain.ModeOnsite}, Score: 40},
	}

	want := "Top 10 Jobs For You — 9AM Digest\n" +
		"Date: 2024-01-09\n" +
		"\n" +
		"----------------------------------------\n" +
		"1. React Developer at BrightApps\n" +
		"   Location: Bengaluru | Mode: Remote\n" +
		"   Match Score: 85/100\n" +
		"   Apply: https://example.com/a\n" +
		"\n" +
		"2. QA Engineer at Finch Labs\n" +
		"   Location: Pune | Mode: Onsite\n" +
		"   Match Score: 40/100\n" +
		"   Apply: #\n" +
		"\n" +
		"----------------------------------------\n" +
		"Generated by Job Notification Tracker"

	assert.Equal(t, want, FormatText(jobs, "2024-01-09"))
}
