package httpapi

import (
	"encoding/json"
	"net/http"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/prefs"
	"jobtracker-engine/internal/store"
)

type PrefsHandler struct {
	KV  store.KV
	Hub *events.Hub
}

func (h PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, prefs.Load(h.KV))
}

// Put overwrites the stored preferences wholesale, the way the settings form
// submits them.
func (h PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming domain.Preferences
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := prefs.Save(h.KV, incoming); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypePreferencesSaved, nil))
	writeJSON(w, prefs.Load(h.KV))
}
