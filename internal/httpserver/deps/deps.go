package deps

import (
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/auth"
	"github.com/MrSnakeDoc/backoffice/internal/kv"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedCIDRS []string         // IPs allowed to access readyz/infra endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy
	CORSOrigins  []string         // allowed Origin values, "*" for any

	Store        kv.Store       // backing key-value store
	StoreBackend string         // "memory" | "sqlite" | "redis"
	Repos        repository.Set // one repository per collection
	Auth         *auth.Service  // accounts and bearer tokens
	AuthBurst    int            // per-IP burst on /auth endpoints
	AuthPerMin   int            // per-IP refill on /auth endpoints
}

// Now returns d.TimeNow() or time.Now().
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
