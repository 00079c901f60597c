package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"jobtracker-engine/internal/checklist"
	"jobtracker-engine/internal/digest"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/prefs"
	"jobtracker-engine/internal/status"
	"jobtracker-engine/internal/store"
)

type ChecklistHandler struct {
	KV  store.KV
	Hub *events.Hub
	Now func() time.Time
}

func (h ChecklistHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"items":   checklist.TestItems,
		"checked": checklist.Get(h.KV),
	})
}

func (h ChecklistHandler) Put(w http.ResponseWriter, r *http.Request) {
	var m map[string]bool
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := checklist.Save(h.KV, m); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeChecklistSaved, nil))
	writeJSON(w, checklist.Get(h.KV))
}

func (h ChecklistHandler) GetProof(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, checklist.GetLinks(h.KV))
}

// PutProof validates and stores the artifact links; a bad URL rejects the
// whole write.
func (h ChecklistHandler) PutProof(w http.ResponseWriter, r *http.Request) {
	var l checklist.Links
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := checklist.SaveLinks(h.KV, l); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_link", err.Error())
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeProofSaved, nil))
	writeJSON(w, checklist.GetLinks(h.KV))
}

func (h ChecklistHandler) Steps(w http.ResponseWriter, r *http.Request) {
	in := h.gather()
	writeJSON(w, map[string]any{
		"steps":    checklist.Steps(in),
		"progress": checklist.Progress(in),
	})
}

func (h ChecklistHandler) Submission(w http.ResponseWriter, r *http.Request) {
	text, err := checklist.Submission(checklist.GetLinks(h.KV))
	if err != nil {
		WriteError(w, r, http.StatusConflict, "links_missing", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// gather re-reads every input from the store; the gate is a pure view with
// no caching.
func (h ChecklistHandler) gather() checklist.Inputs {
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	_, digestExists := digest.Get(h.KV, digest.DateKey(now))
	return checklist.Inputs{
		Prefs:        prefs.Load(h.KV),
		HistoryLen:   len(status.New(h.KV).History()),
		DigestExists: digestExists,
		Checklist:    checklist.Get(h.KV),
		Links:        checklist.GetLinks(h.KV),
	}
}
