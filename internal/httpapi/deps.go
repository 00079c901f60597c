package httpapi

import (
	"database/sql"
	"sync/atomic"
	"time"

	"jobtracker-engine/internal/config"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/store"
)

type Deps struct {
	KV store.KV
	DB *sql.DB // nil when the store isn't sqlite-backed (tests)

	Hub *events.Hub

	// Jobs supplies the externally provided posting list.
	Jobs func() []domain.Job

	// Now is injectable so digest dates are testable.
	Now func() time.Time

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
