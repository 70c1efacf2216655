// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_Wrap(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, false)
	handler := rl.Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/sessions/x/vote", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("Expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected third request to be limited, got %d", codes[2])
	}

	// A different client has its own bucket
	req := httptest.NewRequest("POST", "/sessions/x/vote", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected other client to pass, got %d", w.Code)
	}
}

func TestRateLimiter_IgnoresSpoofedForwardedFor(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	handler := rl.Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	allowed := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest("POST", "/sessions", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}

	// A single bucket for the one remote address
	if allowed != 1 {
		t.Errorf("Expected 1 request allowed, got %d", allowed)
	}
	if len(rl.visitors) != 1 {
		t.Errorf("Expected one tracked client, got %d", len(rl.visitors))
	}
}

func TestRateLimiter_TrustedProxy(t *testing.T) {
	rl := NewRateLimiter(1, 1, true)
	handler := rl.Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Behind a proxy every request shares RemoteAddr; clients are told apart by XFF
	for _, xff := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest("POST", "/sessions", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Expected client %s to pass, got %d", xff, w.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"untrusted ignores X-Forwarded-For", false, map[string]string{"X-Forwarded-For": "192.168.1.100"}, "10.0.0.1:12345", "10.0.0.1"},
		{"untrusted ignores X-Real-IP", false, map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "10.0.0.1"},
		{"untrusted without port", false, nil, "10.0.0.1", "10.0.0.1"},
		{"trusted uses X-Forwarded-For", true, map[string]string{"X-Forwarded-For": "192.168.1.100, 10.0.0.1"}, "10.0.0.1:12345", "192.168.1.100"},
		{"trusted falls back to RemoteAddr", true, nil, "[::1]:8080", "::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := ClientIP(req, tc.trustProxy); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")

	rl.Prune(time.Hour)
	if len(rl.visitors) != 2 {
		t.Errorf("Expected recent visitors to be kept, got %d", len(rl.visitors))
	}

	rl.Prune(-time.Second)
	if len(rl.visitors) != 0 {
		t.Errorf("Expected all visitors pruned, got %d", len(rl.visitors))
	}
}

type fakeObserver struct {
	method string
	route  string
	code   int
	calls  int
}

func (f *fakeObserver) ObserveRequest(method, route string, code int, d time.Duration) {
	f.method, f.route, f.code = method, route, code
	f.calls++
}

func TestWithMetrics(t *testing.T) {
	obs := &fakeObserver{}
	handler := WithMetrics(obs, "/sessions/{id}/undo", func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusConflict, "nothing to undo")
	})

	req := httptest.NewRequest("POST", "/sessions/abc/undo", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if obs.calls != 1 {
		t.Fatalf("Expected one observation, got %d", obs.calls)
	}
	if obs.route != "/sessions/{id}/undo" || obs.method != "POST" || obs.code != http.StatusConflict {
		t.Errorf("Unexpected observation: %+v", obs)
	}
}
