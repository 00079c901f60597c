package checklist

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"jobtracker-engine/internal/store"
)

// Links are the submission artifact URLs. Empty fields mean "not provided
// yet".
type Links struct {
	Lovable string `json:"lovable"`
	GitHub  string `json:"github"`
	Deploy  string `json:"deploy"`
}

func (l Links) AllProvided() bool {
	return l.Lovable != "" && l.GitHub != "" && l.Deploy != ""
}

// GetLinks returns the stored artifact links, empty when absent or
// unreadable.
func GetLinks(kv store.KV) Links {
	raw, ok, err := kv.Get(store.KeyProofLinks)
	if err != nil || !ok {
		if err != nil {
			log.Printf("level=warn msg=\"proof links read failed\" err=%v", err)
		}
		return Links{}
	}
	var l Links
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		log.Printf("level=warn msg=\"proof links unreadable, resetting\" err=%v", err)
		return Links{}
	}
	return l
}

// SaveLinks persists the artifact links. Every non-empty value must be an
// http(s) URL; on rejection nothing is written.
func SaveLinks(kv store.KV, l Links) error {
	fields := []struct {
		name, value string
	}{
		{"lovable", l.Lovable},
		{"github", l.GitHub},
		{"deploy", l.Deploy},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		u, err := url.Parse(f.value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%s link must be an http(s) URL", f.name)
		}
	}

	b, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal proof links: %w", err)
	}
	return kv.Set(store.KeyProofLinks, string(b))
}
