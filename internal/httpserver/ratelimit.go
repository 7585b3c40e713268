package httpserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// perSessionLimit throttles a route group per session, keeping one limiter
// per visitor.
func perSessionLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*rate.Limiter)
	)
	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := visitors[key]; ok {
			return l
		}
		l := rate.NewLimiter(r, burst)
		visitors[key] = l
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(currentSession(c).ID).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
