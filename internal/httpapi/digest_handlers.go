package httpapi

import (
	"net/http"
	"time"

	"jobtracker-engine/internal/digest"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/prefs"
	"jobtracker-engine/internal/store"
)

type DigestHandler struct {
	KV   store.KV
	Hub  *events.Hub
	Jobs func() []domain.Job
	Now  func() time.Time
}

// Generate builds and persists today's digest. Regenerating overwrites the
// earlier one for the same date.
func (h DigestHandler) Generate(w http.ResponseWriter, r *http.Request) {
	date := digest.DateKey(h.Now())
	p := prefs.Load(h.KV)
	top := digest.Generate(h.Jobs(), &p)

	if err := digest.Save(h.KV, date, top); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeDigestGenerated, map[string]any{"date": date, "count": len(top)}))
	writeJSON(w, map[string]any{"date": date, "jobs": top})
}

// Get returns the digest saved for ?date= (default today). A date with no
// saved digest is 404; a saved empty digest is 200 with [].
func (h DigestHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	jobs, found := digest.Get(h.KV, date)
	if !found {
		WriteError(w, r, http.StatusNotFound, "digest_not_generated", "no digest generated for "+date)
		return
	}
	writeJSON(w, map[string]any{"date": date, "jobs": jobs})
}

// Text returns the digest as the plain-text export block.
func (h DigestHandler) Text(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	jobs, found := digest.Get(h.KV, date)
	if !found {
		WriteError(w, r, http.StatusNotFound, "digest_not_generated", "no digest generated for "+date)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(digest.FormatText(jobs, date)))
}

func (h DigestHandler) dateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return digest.DateKey(h.Now()), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}
