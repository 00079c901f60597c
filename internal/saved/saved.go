// Package saved keeps the user's saved-job-id list.
package saved

import (
	"encoding/json"
	"fmt"
	"log"

	"jobtracker-engine/internal/store"
)

// List returns saved job ids in insertion order. Absent or unreadable state
// is an empty list.
func List(kv store.KV) []string {
	raw, ok, err := kv.Get(store.KeySavedIDs)
	if err != nil || !ok {
		if err != nil {
			log.Printf("level=warn msg=\"saved ids read failed\" err=%v", err)
		}
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("level=warn msg=\"saved ids unreadable, resetting\" err=%v", err)
		return []string{}
	}
	return ids
}

// Save appends id to the list; saving an already-saved id is a no-op.
func Save(kv store.KV, id string) error {
	ids := List(kv)
	for _, x := range ids {
		if x == id {
			return nil
		}
	}
	return write(kv, append(ids, id))
}

func Unsave(kv store.KV, id string) error {
	ids := List(kv)
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return write(kv, out)
}

func IsSaved(kv store.KV, id string) bool {
	for _, x := range List(kv) {
		if x == id {
			return true
		}
	}
	return false
}

func write(kv store.KV, ids []string) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal saved ids: %w", err)
	}
	return kv.Set(store.KeySavedIDs, string(b))
}
