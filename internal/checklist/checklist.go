// Package checklist holds the ship checklist, the proof artifact links, and
// the step-completion gate derived from the rest of the engine's state.
package checklist

import (
	"encoding/json"
	"fmt"
	"log"

	"jobtracker-engine/internal/store"
)

// TestItem is one manual verification step on the ship checklist.
type TestItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Hint string `json:"hint"`
}

// TestItems is the fixed verification checklist; ids key the persisted map.
var TestItems = []TestItem{
	{ID: "t1", Text: "Preferences persist after refresh", Hint: "Change keywords, refresh, verify they remain in form."},
	{ID: "t2", Text: "Match score calculates correctly", Hint: "Verify score badge appears and reflects keyword matches."},
	{ID: "t3", Text: `"Show only matches" toggle works`, Hint: "Toggle on, verify low-score jobs disappear."},
	{ID: "t4", Text: "Save job persists after refresh", Hint: "Save a job, refresh, check if it stays in Saved tab."},
	{ID: "t5", Text: "Apply opens in new tab", Hint: "Click Apply, ensure a new browser tab opens."},
	{ID: "t6", Text: "Status update persists after refresh", Hint: "Change status to Applied, refresh, verify badge color."},
	{ID: "t7", Text: "Status filter works correctly", Hint: `Select "Applied" filter, verify list updates.`},
	{ID: "t8", Text: "Digest generates top 10 by score", Hint: "Generate digest, verify sorting and count (max 10)."},
	{ID: "t9", Text: "Digest persists for the day", Hint: "Generate digest, refresh page, verify it remains visible."},
	{ID: "t10", Text: "No console errors on main pages", Hint: "Open F12 console, verify no red error messages."},
}

// Get returns the checked-state map. Absent or unreadable state is empty
// (nothing checked).
func Get(kv store.KV) map[string]bool {
	raw, ok, err := kv.Get(store.KeyChecklist)
	if err != nil || !ok {
		if err != nil {
			log.Printf("level=warn msg=\"checklist read failed\" err=%v", err)
		}
		return map[string]bool{}
	}
	var m map[string]bool
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		log.Printf("level=warn msg=\"checklist unreadable, resetting\" err=%v", err)
		return map[string]bool{}
	}
	if m == nil {
		m = map[string]bool{}
	}
	return m
}

// Save persists the checked-state map, dropping ids that are not on the
// checklist.
func Save(kv store.KV, m map[string]bool) error {
	known := map[string]bool{}
	for _, item := range TestItems {
		if m[item.ID] {
			known[item.ID] = true
		}
	}
	b, err := json.Marshal(known)
	if err != nil {
		return fmt.Errorf("marshal checklist: %w", err)
	}
	return kv.Set(store.KeyChecklist, string(b))
}

func PassedCount(m map[string]bool) int {
	n := 0
	for _, item := range TestItems {
		if m[item.ID] {
			n++
		}
	}
	return n
}

func AllPassed(m map[string]bool) bool {
	return PassedCount(m) == len(TestItems)
}
