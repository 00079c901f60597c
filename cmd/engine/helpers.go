package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"jobtracker-engine/internal/config"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/jobs"
)

// loadJobs resolves the job supply: configured JSON file first, then a
// locally saved alert page, then the built-in seed list. A bad file logs
// and falls through rather than killing startup.
func loadJobs(cfg config.Config) []domain.Job {
	if cfg.Jobs.File != "" {
		list, err := jobs.LoadFile(cfg.Jobs.File)
		if err != nil {
			log.Printf("level=warn msg=\"jobs file unreadable, falling back\" path=%s err=%v", cfg.Jobs.File, err)
		} else {
			return list
		}
	}
	if cfg.Jobs.HTMLFile != "" {
		f, err := os.Open(cfg.Jobs.HTMLFile)
		if err != nil {
			log.Printf("level=warn msg=\"jobs html file unreadable, falling back\" path=%s err=%v", cfg.Jobs.HTMLFile, err)
		} else {
			defer f.Close()
			list, err := jobs.ImportHTML(f)
			if err == nil && len(list) > 0 {
				return list
			}
			log.Printf("level=warn msg=\"jobs html import empty, falling back\" path=%s err=%v", cfg.Jobs.HTMLFile, err)
		}
	}
	return jobs.Seed()
}

// jobSupply freezes the loaded list behind the Deps accessor.
func jobSupply(list []domain.Job) func() []domain.Job {
	return func() []domain.Job { return list }
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// writeTokenFile leaves the shutdown token where the desktop shell can read
// it. Owner-only: the token authorizes stopping the engine.
func writeTokenFile(dataDir, token string) error {
	return os.WriteFile(filepath.Join(dataDir, "engine.token"), []byte(token), 0o600)
}

func shutdownHandler(token *string, srv *http.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// Local-only guard (covers typical desktop usage)
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(*token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Respond immediately, then shutdown asynchronously
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}
}
