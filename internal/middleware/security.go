package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"personaljournal/pkg/clientip"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// --- In-process rate limiting (per-IP, 2/s, burst 10) ---
// Used when no Redis is configured; counters live in process memory only.

var (
	limiterEntries   = make(map[string]*limiterEntry)
	limiterEntriesMu sync.Mutex
	limiterCleanup   bool
)

const (
	localRateLimitRPS   = 2
	localRateLimitBurst = 10
	limiterCleanupEvery = 5 * time.Minute
	limiterTTL          = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

func getLimiter(ip string) *rate.Limiter {
	limiterEntriesMu.Lock()
	defer limiterEntriesMu.Unlock()
	startCleanupOnce()
	e, ok := limiterEntries[ip]
	if !ok {
		e = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(localRateLimitRPS), localRateLimitBurst),
			lastUse: time.Now(),
		}
		limiterEntries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func startCleanupOnce() {
	if limiterCleanup {
		return
	}
	limiterCleanup = true
	go func() {
		ticker := time.NewTicker(limiterCleanupEvery)
		defer ticker.Stop()
		for range ticker.C {
			limiterEntriesMu.Lock()
			now := time.Now()
			for ip, e := range limiterEntries {
				if now.Sub(e.lastUse) > limiterTTL {
					delete(limiterEntries, ip)
				}
			}
			limiterEntriesMu.Unlock()
		}
	}()
}

// LocalRateLimit limits each IP to 2 req/s, burst 10, without any external
// store. Returns 429 when exceeded.
func LocalRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		if !getLimiter(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"Too many requests. Please slow down."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
