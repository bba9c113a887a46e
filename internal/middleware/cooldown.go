package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== Cooldown Limiter ====================

// CooldownLimiter tracks the last execution time per key and rejects
// re-triggers inside the cooldown window. Used to guard manual feed
// imports, which hammer an external CMS.
type CooldownLimiter struct {
	locks sync.Map // key -> *lockEntry
}

type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

var globalLimiter = &CooldownLimiter{}

func GetLimiter() *CooldownLimiter {
	return globalLimiter
}

type CheckResult struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Check marks the key as executed when allowed, so concurrent callers
// cannot both pass.
func (r *CooldownLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset clears the cooldown for a key.
func (r *CooldownLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// ==================== Gin Middleware ====================

const DefaultImportCooldown = 5 * time.Minute

// Cooldown rejects requests that re-trigger the keyed action before its
// cooldown elapses.
func Cooldown(key string, interval time.Duration) gin.HandlerFunc {
	if interval == 0 {
		interval = DefaultImportCooldown
	}

	return func(c *gin.Context) {
		result := GetLimiter().Check(key, interval)
		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": fmt.Sprintf("cooling down, retry in %d seconds", retryAfter),
				"data": gin.H{
					"retry_after": retryAfter,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
