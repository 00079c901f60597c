// Package jobs supplies the externally provided job records the engine
// consumes. It never fetches anything: records come from a local JSON file,
// a locally saved alert page, or the built-in seed list.
package jobs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"jobtracker-engine/internal/domain"
)

// LoadFile reads an ordered job list from a JSON file.
func LoadFile(path string) ([]domain.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a JSON job array, normalizing modes at the boundary and
// rejecting duplicate ids and negative posting ages.
func Decode(r io.Reader) ([]domain.Job, error) {
	var list []domain.Job
	dec := json.NewDecoder(r)
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	seen := map[string]bool{}
	for i := range list {
		j := &list[i]
		if j.ID == "" {
			return nil, fmt.Errorf("job %d: missing id", i)
		}
		if seen[j.ID] {
			return nil, fmt.Errorf("duplicate job id %q", j.ID)
		}
		seen[j.ID] = true
		if j.PostedDaysAgo < 0 {
			return nil, fmt.Errorf("job %q: postedDaysAgo must be >= 0", j.ID)
		}
		j.Mode = domain.ParseMode(string(j.Mode))
		if j.Skills == nil {
			j.Skills = []string{}
		}
	}
	return list, nil
}
