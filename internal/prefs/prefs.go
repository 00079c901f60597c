package prefs

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/store"
)

// Load returns the persisted preferences. Absent or unreadable state falls
// back to defaults; a store error is treated the same way.
func Load(kv store.KV) domain.Preferences {
	raw, ok, err := kv.Get(store.KeyPreferences)
	if err != nil {
		log.Printf("level=warn msg=\"preferences read failed, using defaults\" err=%v", err)
		return domain.DefaultPreferences()
	}
	if !ok {
		return domain.DefaultPreferences()
	}

	var p domain.Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("level=warn msg=\"preferences unreadable, using defaults\" err=%v", err)
		return domain.DefaultPreferences()
	}
	return normalize(p)
}

// Save overwrites the stored preferences wholesale.
func Save(kv store.KV, p domain.Preferences) error {
	b, err := json.Marshal(normalize(p))
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	return kv.Set(store.KeyPreferences, string(b))
}

func normalize(p domain.Preferences) domain.Preferences {
	p.RoleKeywords = trimList(p.RoleKeywords)
	p.PreferredLocations = trimList(p.PreferredLocations)
	p.Skills = trimList(p.Skills)
	p.ExperienceLevel = strings.TrimSpace(p.ExperienceLevel)

	modes := p.PreferredMode
	p.PreferredMode = make([]domain.JobMode, 0, len(modes))
	seen := map[domain.JobMode]bool{}
	for _, m := range modes {
		parsed := domain.ParseMode(string(m))
		if parsed == domain.ModeUnknown || seen[parsed] {
			continue
		}
		seen[parsed] = true
		p.PreferredMode = append(p.PreferredMode, parsed)
	}

	if p.MinMatchScore < 0 {
		p.MinMatchScore = 0
	}
	if p.MinMatchScore > 100 {
		p.MinMatchScore = 100
	}
	return p
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	ys := make([]string, 0, len(xs))
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}
