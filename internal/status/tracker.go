// Package status keeps the per-job application status map and the bounded
// history of status changes.
package status

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/store"
)

// historyMax bounds the change log; entries beyond it are discarded oldest
// first.
const historyMax = 50

// Entry is one status-change event. The stored log is newest first.
type Entry struct {
	ID        string           `json:"id"`
	Status    domain.JobStatus `json:"status"`
	Timestamp string           `json:"timestamp"`
}

// Tracker reads and writes status state through the store on every call, so
// writes from another client are observed on the next read.
type Tracker struct {
	KV  store.KV
	Now func() time.Time
}

func New(kv store.KV) *Tracker {
	return &Tracker{KV: kv, Now: time.Now}
}

// Get returns the current status for a job id, defaulting to Not Applied.
func (t *Tracker) Get(id string) domain.JobStatus {
	m := t.Map()
	if s, ok := m[id]; ok {
		return s
	}
	return domain.StatusNotApplied
}

// Map returns the full status map. Absent or unreadable state is empty.
func (t *Tracker) Map() map[string]domain.JobStatus {
	raw, ok, err := t.KV.Get(store.KeyStatusMap)
	if err != nil || !ok {
		if err != nil {
			log.Printf("level=warn msg=\"status map read failed\" err=%v", err)
		}
		return map[string]domain.JobStatus{}
	}
	var m map[string]domain.JobStatus
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		log.Printf("level=warn msg=\"status map unreadable, resetting\" err=%v", err)
		return map[string]domain.JobStatus{}
	}
	if m == nil {
		m = map[string]domain.JobStatus{}
	}
	return m
}

// Set upserts the status for a job id and unconditionally prepends a history
// entry, even when the new status equals the old one.
func (t *Tracker) Set(id string, s domain.JobStatus) error {
	if !s.Valid() {
		return fmt.Errorf("unknown status %q", s)
	}

	m := t.Map()
	m[id] = s
	mb, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal status map: %w", err)
	}
	if err := t.KV.Set(store.KeyStatusMap, string(mb)); err != nil {
		return err
	}

	history := append([]Entry{{
		ID:        id,
		Status:    s,
		Timestamp: t.Now().UTC().Format(time.RFC3339),
	}}, t.History()...)
	if len(history) > historyMax {
		history = history[:historyMax]
	}
	hb, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal status history: %w", err)
	}
	return t.KV.Set(store.KeyStatusHistory, string(hb))
}

// History returns the change log, newest first. Absent or unreadable state
// is empty.
func (t *Tracker) History() []Entry {
	raw, ok, err := t.KV.Get(store.KeyStatusHistory)
	if err != nil || !ok {
		if err != nil {
			log.Printf("level=warn msg=\"status history read failed\" err=%v", err)
		}
		return []Entry{}
	}
	var h []Entry
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		log.Printf("level=warn msg=\"status history unreadable, resetting\" err=%v", err)
		return []Entry{}
	}
	return h
}
