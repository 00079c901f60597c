package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/status"
	"jobtracker-engine/internal/store"
)

type StatusHandler struct {
	KV  store.KV
	Hub *events.Hub
}

func (h StatusHandler) Map(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, status.New(h.KV).Map())
}

// SetByPath updates one job's status, /status/{id} with {"status": "..."}.
// Unknown status strings are rejected before anything is written.
func (h StatusHandler) SetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/status/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "missing job id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	s, ok := domain.ParseStatus(body.Status)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status: "+body.Status)
		return
	}

	if err := status.New(h.KV).Set(id, s); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeStatusUpdated, map[string]any{"id": id, "status": s}))
	writeJSON(w, map[string]any{"ok": true, "id": id, "status": s})
}

func (h StatusHandler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, status.New(h.KV).History())
}
