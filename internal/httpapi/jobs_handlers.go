package httpapi

import (
	"net/http"
	"strconv"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/filter"
	"jobtracker-engine/internal/prefs"
	"jobtracker-engine/internal/rank"
	"jobtracker-engine/internal/status"
	"jobtracker-engine/internal/store"
)

type JobsHandler struct {
	KV   store.KV
	Jobs func() []domain.Job
}

// List scores the supplied jobs against the stored preferences and applies
// the filter spec from the query string.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec := filter.Spec{
		Keyword:    q.Get("keyword"),
		Location:   q.Get("location"),
		Experience: q.Get("experience"),
		Source:     q.Get("source"),
		Sort:       domain.ParseSortKey(q.Get("sort")),
	}
	if v := q.Get("mode"); v != "" {
		spec.Mode = domain.ParseMode(v)
	}
	if v := q.Get("status"); v != "" {
		s, ok := domain.ParseStatus(v)
		if !ok {
			WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status filter: "+v)
			return
		}
		spec.Status = s
	}
	if v := q.Get("matches_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, "invalid_param", "matches_only must be a boolean")
			return
		}
		spec.ShowMatchesOnly = b
	}

	p := prefs.Load(h.KV)
	scored := rank.ScoreAll(h.Jobs(), &p)
	tracker := status.New(h.KV)
	out := filter.Apply(scored, spec, &p, tracker.Get)

	writeJSON(w, out)
}

// Facets returns the distinct filterable values the dashboard builds its
// dropdowns from.
func (h JobsHandler) Facets(w http.ResponseWriter, r *http.Request) {
	list := h.Jobs()
	writeJSON(w, map[string][]string{
		"locations":   filter.UniqueValues(list, func(j domain.Job) string { return j.Location }),
		"experiences": filter.UniqueValues(list, func(j domain.Job) string { return j.Experience }),
		"sources":     filter.UniqueValues(list, func(j domain.Job) string { return j.Source }),
	})
}
