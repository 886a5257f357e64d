package middleware

import (
	"strconv"
	"sync"
	"time"

	"workgroup/config"
	deliverycontext "workgroup/internal/delivery/context"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Limiters idle for longer than this are forgotten on the next sweep.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per authenticated user.
type RateLimiter struct {
	name    string
	limit   rate.Limit
	burst   int
	metrics *metrics.Metrics
	now     func() time.Time

	mu        sync.Mutex
	limiters  map[int64]*limiterEntry
	lastSweep time.Time
}

// NewRateLimiter builds a limiter allowing limit events per second with the given burst.
// m may be nil.
func NewRateLimiter(name string, limit rate.Limit, burst int, m *metrics.Metrics) *RateLimiter {
	return &RateLimiter{
		name:     name,
		limit:    limit,
		burst:    burst,
		metrics:  m,
		now:      time.Now,
		limiters: make(map[int64]*limiterEntry),
	}
}

// IngestionRateLimiter is the limiter guarding notification ingestion.
type IngestionRateLimiter struct {
	*RateLimiter
}

// NewIngestionRateLimiter reads the ingestion bucket from cfg.RateLimit.
func NewIngestionRateLimiter(cfg *config.Config, m *metrics.Metrics) *IngestionRateLimiter {
	ingestion := cfg.RateLimit.Ingestion

	return &IngestionRateLimiter{
		RateLimiter: NewRateLimiter("ingestion", rate.Limit(ingestion.RPS), ingestion.Burst, m),
	}
}

// Allow consumes one token from key's bucket.
func (rl *RateLimiter) Allow(key int64) bool {
	now := rl.now()

	rl.mu.Lock()
	rl.sweepLocked(now)
	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now
	rl.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterIdleTTL {
		return
	}
	rl.lastSweep = now

	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, key)
		}
	}
}

// Middleware throttles per principal. It must run after Authenticate.
func (rl *RateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		if !rl.Allow(principal.UserID) {
			if rl.metrics != nil {
				rl.metrics.RateLimitRejectionsTotal.WithLabelValues(rl.name).Inc()
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 1
	}

	seconds := int(1 / float64(rl.limit))
	if seconds < 1 {
		return 1
	}

	return seconds
}
