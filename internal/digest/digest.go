// Package digest selects and persists the top jobs for a calendar date.
package digest

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/rank"
	"jobtracker-engine/internal/store"
)

// maxEntries caps the digest length.
const maxEntries = 10

// Generate scores every job and returns the top entries by score, fresher
// postings winning ties. No score floor is applied: an all-zero result is a
// valid digest. Empty input yields an empty digest, never an error.
func Generate(jobs []domain.Job, prefs *domain.Preferences) []domain.ScoredJob {
	if len(jobs) == 0 {
		log.Printf("level=warn msg=\"no jobs available for digest generation\"")
		return []domain.ScoredJob{}
	}

	scored := rank.ScoreAll(jobs, prefs)
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].PostedDaysAgo < scored[j].PostedDaysAgo
	})

	if len(scored) > maxEntries {
		scored = scored[:maxEntries]
	}
	return scored
}

// DateKey is the calendar-date scope for digest persistence, local time.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Save persists the digest for date, overwriting any earlier one. A saved
// empty digest is stored as [] so it stays distinguishable from "never
// generated".
func Save(kv store.KV, date string, jobs []domain.ScoredJob) error {
	if jobs == nil {
		jobs = []domain.ScoredJob{}
	}
	b, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("marshal digest: %w", err)
	}
	return kv.Set(store.DigestKey(date), string(b))
}

// Get returns the digest saved for date. The bool reports whether one was
// ever generated for that date; a generated-but-empty digest is ([], true).
func Get(kv store.KV, date string) ([]domain.ScoredJob, bool) {
	raw, ok, err := kv.Get(store.DigestKey(date))
	if err != nil || !ok {
		if err != nil {
			log.Printf("level=warn msg=\"digest read failed\" date=%s err=%v", date, err)
		}
		return nil, false
	}
	var jobs []domain.ScoredJob
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		log.Printf("level=warn msg=\"digest unreadable\" date=%s err=%v", date, err)
		return nil, false
	}
	if jobs == nil {
		jobs = []domain.ScoredJob{}
	}
	return jobs, true
}
