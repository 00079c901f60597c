package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/store"
)

func allChecked() map[string]bool {
	m := map[string]bool{}
	for _, item := range TestItems {
		m[item.ID] = true
	}
	return m
}

func TestChecklist_SaveGet(t *testing.T) {
	kv := store.NewMemory()

	assert.Empty(t, Get(kv))

	require.NoError(t, Save(kv, map[string]bool{"t1": true, "bogus": true, "t2": false}))
	got := Get(kv)
	assert.Equal(t, map[string]bool{"t1": true}, got)
}

func TestAllPassed(t *testing.T) {
	assert.False(t, AllPassed(map[string]bool{}))
	assert.False(t, AllPassed(map[string]bool{"t1": true}))
	assert.True(t, AllPassed(allChecked()))
	assert.Equal(t, 10, PassedCount(allChecked()))
}

func TestSaveLinks_Validation(t *testing.T) {
	tests := []struct {
		name    string
		links   Links
		wantErr bool
	}{
		{"all empty is fine", Links{}, false},
		{"https urls", Links{Lovable: "https://lovable.dev/p/1", GitHub: "https://github.com/u/r", Deploy: "https://app.vercel.app"}, false},
		{"http url", Links{Deploy: "http://localhost:3000"}, false},
		{"bare word", Links{GitHub: "notaurl"}, true},
		{"ftp scheme", Links{Deploy: "ftp://host/file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := store.NewMemory()
			err := SaveLinks(kv, tc.links)
			if tc.wantErr {
				require.Error(t, err)
				// rejected writes leave nothing behind
				_, ok, _ := kv.Get(store.KeyProofLinks)
				assert.False(t, ok)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.links, GetLinks(kv))
			}
		})
	}
}

func TestSteps_Gating(t *testing.T) {
	completed := func(steps []Step, id int) bool {
		for _, s := range steps {
			if s.ID == id {
				return s.Completed
			}
		}
		t.Fatalf("no step %d", id)
		return false
	}

	empty := Inputs{Prefs: domain.DefaultPreferences()}
	steps := Steps(empty)
	require.Len(t, steps, 8)
	assert.True(t, completed(steps, 1), "landing is always complete")
	assert.True(t, completed(steps, 3), "scoring engine is always complete")
	for _, id := range []int{2, 4, 5, 6, 7, 8} {
		assert.False(t, completed(steps, id), "step %d", id)
	}

	full := Inputs{
		Prefs:        domain.Preferences{RoleKeywords: []string{"react"}},
		HistoryLen:   3,
		DigestExists: true,
		Checklist:    allChecked(),
		Links:        Links{Lovable: "https://a", GitHub: "https://b", Deploy: "https://c"},
	}
	for _, s := range Steps(full) {
		assert.True(t, s.Completed, "step %d", s.ID)
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, ProgressNotStarted, Progress(Inputs{Prefs: domain.DefaultPreferences()}))

	assert.Equal(t, ProgressInProgress, Progress(Inputs{
		Prefs:     domain.DefaultPreferences(),
		Checklist: map[string]bool{"t1": true},
	}))
	assert.Equal(t, ProgressInProgress, Progress(Inputs{
		Prefs:      domain.DefaultPreferences(),
		HistoryLen: 1,
	}))

	assert.Equal(t, ProgressShipped, Progress(Inputs{
		Prefs:     domain.DefaultPreferences(),
		Checklist: allChecked(),
		Links:     Links{Lovable: "https://a", GitHub: "https://b", Deploy: "https://c"},
	}))
}

func TestSubmission(t *testing.T) {
	_, err := Submission(Links{GitHub: "https://github.com/u/r"})
	require.Error(t, err)

	text, err := Submission(Links{Lovable: "https://a", GitHub: "https://b", Deploy: "https://c"})
	require.NoError(t, err)
	assert.Contains(t, text, "Job Notification Tracker — Final Submission")
	assert.Contains(t, text, "https://a")
	assert.Contains(t, text, "https://b")
	assert.Contains(t, text, "https://c")
	assert.Contains(t, text, "- Intelligent match scoring")
}
