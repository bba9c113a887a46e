package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCooldownLimiter(t *testing.T) {
	limiter := &CooldownLimiter{}

	first := limiter.Check("import", time.Minute)
	assert.True(t, first.Allowed)

	second := limiter.Check("import", time.Minute)
	assert.False(t, second.Allowed)
	assert.Greater(t, second.RetryAfter, time.Duration(0))

	// Different keys do not share a window.
	other := limiter.Check("other", time.Minute)
	assert.True(t, other.Allowed)

	limiter.Reset("import")
	again := limiter.Check("import", time.Minute)
	assert.True(t, again.Allowed)
}

func TestCooldownMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	GetLimiter().Reset("test:cooldown")

	r := gin.New()
	r.POST("/trigger", Cooldown("test:cooldown", time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trigger", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trigger", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
