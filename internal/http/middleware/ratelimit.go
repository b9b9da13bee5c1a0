package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowCounter struct {
	start time.Time
	count int
}

var (
	rlMu      sync.Mutex
	rlClients = make(map[string]*windowCounter)
)

// SimpleRateLimit is an in-process fixed-window limiter keyed by client
// IP. It is the fallback when Redis is not configured; counts are per
// process, not shared across replicas.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()
		wc, ok := rlClients[ip]
		if !ok || now.Sub(wc.start) > window {
			rlClients[ip] = &windowCounter{start: now, count: 1}
			rlMu.Unlock()
			RLRequests.WithLabelValues(c.FullPath()).Inc()
			c.Next()
			return
		}
		wc.count++
		over := wc.count > maxRequests
		rlMu.Unlock()

		if over {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
