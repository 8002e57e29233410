package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "exact match",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{"http://localhost:3000"},
			want:           true,
		},
		{
			name:           "wildcard matches everything",
			origin:         "https://example.com",
			allowedOrigins: []string{"*"},
			want:           true,
		},
		{
			name:           "prefix wildcard",
			origin:         "http://localhost:8081",
			allowedOrigins: []string{"http://localhost:*"},
			want:           true,
		},
		{
			name:           "no match",
			origin:         "https://evil.example.com",
			allowedOrigins: []string{"http://localhost:3000"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "http://localhost:3000",
			allowedOrigins: nil,
			want:           false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := isAllowedOrigin(tc.origin, tc.allowedOrigins)
			if got != tc.want {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v",
					tc.origin, tc.allowedOrigins, got, tc.want)
			}
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"*"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("denies requests over the per-IP budget", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(2))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
			t.Errorf("first two statuses = %v, want 200s within the burst", statuses[:2])
		}
		if statuses[2] != http.StatusTooManyRequests {
			t.Errorf("third status = %d, want %d", statuses[2], http.StatusTooManyRequests)
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(1))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		first, _ := http.NewRequest("GET", "/ping", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, first)
		if w.Code != http.StatusOK {
			t.Fatalf("first client status = %d, want 200", w.Code)
		}

		// A different client gets its own bucket
		second, _ := http.NewRequest("GET", "/ping", nil)
		second.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, second)
		if w.Code != http.StatusOK {
			t.Errorf("second client status = %d, want 200", w.Code)
		}
	})

	t.Run("non-positive budget disables limiting", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(0))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 20; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i, w.Code)
			}
		}
	})
}
