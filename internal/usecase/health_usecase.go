package usecase

import (
	"context"
	"time"
)

// Pinger is anything that can report its own reachability, such as
// *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthUsecase interface {
	// Check returns per-dependency status and whether the service is usable.
	// Redis is optional: when down, rate limiting falls back to memory.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db    Pinger
	redis Pinger
}

// NewHealthUsecase builds the health check. redis may be nil when not configured.
func NewHealthUsecase(db Pinger, redis Pinger) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}
	healthy := true

	if u.db == nil || u.db.Ping(ctx) != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
		healthy = false
	}
	if u.redis != nil {
		if err := u.redis.Ping(ctx); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status, healthy
}
