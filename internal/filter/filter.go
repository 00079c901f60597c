package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jobtracker-engine/internal/domain"
)

// Spec is the optional predicate/sort set applied to a scored collection.
// All present predicates are conjunctive.
type Spec struct {
	Keyword         string
	Location        string
	Mode            domain.JobMode
	Experience      string
	Source          string
	Status          domain.JobStatus
	ShowMatchesOnly bool
	Sort            domain.SortKey
}

// StatusFunc resolves a job id to its current application status. Lookups
// are live: the view reflects the status map at call time, never a snapshot
// taken when the job was scored.
type StatusFunc func(id string) domain.JobStatus

// Apply filters then sorts a scored collection into a new ordered view.
// The input slice is never mutated.
func Apply(scored []domain.ScoredJob, spec Spec, prefs *domain.Preferences, statusOf StatusFunc) []domain.ScoredJob {
	minScore := domain.DefaultMinMatchScore
	if prefs != nil && prefs.MinMatchScore > 0 {
		minScore = prefs.MinMatchScore
	}

	var terms []string
	if spec.Keyword != "" {
		terms = strings.Fields(strings.ToLower(spec.Keyword))
	}

	out := make([]domain.ScoredJob, 0, len(scored))
	for _, j := range scored {
		if spec.ShowMatchesOnly && prefs != nil && j.Score < minScore {
			continue
		}
		if len(terms) > 0 && !matchesAllTerms(j, terms) {
			continue
		}
		if spec.Location != "" && j.Location != spec.Location {
			continue
		}
		if spec.Mode != "" && j.Mode != spec.Mode {
			continue
		}
		if spec.Experience != "" && j.Experience != spec.Experience {
			continue
		}
		if spec.Source != "" && j.Source != spec.Source {
			continue
		}
		if spec.Status != "" {
			s := domain.StatusNotApplied
			if statusOf != nil {
				s = statusOf(j.ID)
			}
			if s != spec.Status {
				continue
			}
		}
		out = append(out, j)
	}

	sortJobs(out, spec.Sort)
	return out
}

// matchesAllTerms requires every keyword term to appear in the title or the
// company name, case-insensitively.
func matchesAllTerms(j domain.ScoredJob, terms []string) bool {
	title := strings.ToLower(j.Title)
	company := strings.ToLower(j.Company)
	for _, t := range terms {
		if !strings.Contains(title, t) && !strings.Contains(company, t) {
			return false
		}
	}
	return true
}

func sortJobs(jobs []domain.ScoredJob, key domain.SortKey) {
	switch key {
	case domain.SortMatchScore:
		sort.SliceStable(jobs, func(i, k int) bool {
			return jobs[i].Score > jobs[k].Score
		})
	case domain.SortLatest:
		sort.SliceStable(jobs, func(i, k int) bool {
			return jobs[i].PostedDaysAgo < jobs[k].PostedDaysAgo
		})
	case domain.SortOldest:
		sort.SliceStable(jobs, func(i, k int) bool {
			return jobs[i].PostedDaysAgo > jobs[k].PostedDaysAgo
		})
	case domain.SortCompanyAZ:
		c := collate.New(language.English)
		sort.SliceStable(jobs, func(i, k int) bool {
			return c.CompareString(jobs[i].Company, jobs[k].Company) < 0
		})
	default:
		// unrecognized key: keep the filtered order
	}
}

// UniqueValues collects the distinct non-empty values of one job field,
// sorted; the dashboard builds its facet dropdowns from these.
func UniqueValues(jobs []domain.Job, field func(domain.Job) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, j := range jobs {
		v := field(j)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
