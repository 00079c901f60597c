package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs
// srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{KV: d.KV, Jobs: d.Jobs}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/facets", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Facets,
	}))

	ph := PrefsHandler{KV: d.KV, Hub: d.Hub}
	mux.HandleFunc("/preferences", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
		http.MethodPut: ph.Put,
	}))

	svh := SavedHandler{KV: d.KV, Hub: d.Hub, Jobs: d.Jobs}
	mux.HandleFunc("/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: svh.List,
	}))
	mux.HandleFunc("/saved/", methodMux(map[string]http.HandlerFunc{
		http.MethodPut:    svh.SaveByPath,
		http.MethodDelete: svh.UnsaveByPath,
	}))

	sh := StatusHandler{KV: d.KV, Hub: d.Hub}
	mux.HandleFunc("/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Map,
	}))
	mux.HandleFunc("/status/history", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.History,
	}))
	mux.HandleFunc("/status/", methodMux(map[string]http.HandlerFunc{
		http.MethodPut: sh.SetByPath,
	}))

	dh := DigestHandler{KV: d.KV, Hub: d.Hub, Jobs: d.Jobs, Now: d.now}
	mux.HandleFunc("/digest", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Get,
	}))
	mux.HandleFunc("/digest/generate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Generate,
	}))
	mux.HandleFunc("/digest/text", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Text,
	}))

	clh := ChecklistHandler{KV: d.KV, Hub: d.Hub, Now: d.now}
	mux.HandleFunc("/checklist", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: clh.Get,
		http.MethodPut: clh.Put,
	}))
	mux.HandleFunc("/proof", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: clh.GetProof,
		http.MethodPut: clh.PutProof,
	}))
	mux.HandleFunc("/proof/steps", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: clh.Steps,
	}))
	mux.HandleFunc("/proof/submission", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: clh.Submission,
	}))

	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	dbh := DBHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
