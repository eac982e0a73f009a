package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestAllow_WithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d was denied, want allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("request over the limit was allowed")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request for key A was denied")
	}
	if !rl.Allow("5.6.7.8") {
		t.Fatal("first request for key B was denied")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request for key A was allowed")
	}
}

func TestAllow_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request was denied")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request in the same window was allowed")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("request after the window reset was denied")
	}
}

func TestMiddleware_RejectsWith429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, time.Minute)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func() *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := get(); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", w.Code, http.StatusOK)
	}
	if w := get(); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
}
