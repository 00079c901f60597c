package httpapi

import (
	"net/http"
	"strings"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/prefs"
	"jobtracker-engine/internal/rank"
	"jobtracker-engine/internal/saved"
	"jobtracker-engine/internal/store"
)

type SavedHandler struct {
	KV   store.KV
	Hub  *events.Hub
	Jobs func() []domain.Job
}

// List returns the saved jobs, scored against the current preferences.
func (h SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	ids := saved.List(h.KV)
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	p := prefs.Load(h.KV)
	out := []domain.ScoredJob{}
	for _, j := range h.Jobs() {
		if wanted[j.ID] {
			out = append(out, domain.ScoredJob{Job: j, Score: rank.Score(j, &p)})
		}
	}
	writeJSON(w, out)
}

func (h SavedHandler) SaveByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/saved/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "missing job id")
		return
	}
	if err := saved.Save(h.KV, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobSaved, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

func (h SavedHandler) UnsaveByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/saved/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "missing job id")
		return
	}
	if err := saved.Unsave(h.KV, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobUnsaved, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
