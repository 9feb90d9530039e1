package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	limiter := NewRateLimiter(func() time.Time { return time.Unix(0, 0) })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("1.2.3.4|SCRAPE", rule)
		if !allowed {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	allowed, retryAfter := limiter.Allow("1.2.3.4|SCRAPE", rule)
	if allowed {
		t.Fatalf("third request should be denied")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}
}

func TestRateLimitRefillsOverTime(t *testing.T) {
	now := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("k", rule); !allowed {
		t.Fatal("first request should pass")
	}
	if allowed, _ := limiter.Allow("k", rule); allowed {
		t.Fatal("second immediate request should be denied")
	}

	now = now.Add(2 * time.Second)
	if allowed, _ := limiter.Allow("k", rule); !allowed {
		t.Fatal("request after refill should pass")
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(RateLimitConfig{
		Rules:   map[string]RateLimitRule{"DEFAULT": {Rate: 0.001, Burst: 1}},
		Limiter: NewRateLimiter(func() time.Time { return time.Unix(0, 0) }),
	}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}
