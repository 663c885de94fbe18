package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogbuster/pkg/endpoint"
)

func TestPublicMiddleware_RateLimitPerIP(t *testing.T) {
	pm := MakePublicMiddleware(2, true)
	handler := pm.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError { return nil })

	send := func(ip string) *endpoint.ApiError {
		req := httptest.NewRequest("GET", "/posts/", nil)
		req.Header.Set("X-Forwarded-For", ip)

		return handler(httptest.NewRecorder(), req)
	}

	if err := send("1.2.3.4"); err != nil {
		t.Fatalf("first request failed: %#v", err)
	}

	if err := send("1.2.3.4"); err != nil {
		t.Fatalf("second request failed: %#v", err)
	}

	if err := send("1.2.3.4"); err == nil || err.Status != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %#v", err)
	}

	if err := send("5.6.7.8"); err != nil {
		t.Fatalf("other ip should pass: %#v", err)
	}
}

func TestPublicMiddleware_MissingLimiter(t *testing.T) {
	pm := PublicMiddleware{}
	handler := pm.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError { return nil })

	err := handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if err == nil || err.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %#v", err)
	}
}

func TestPublicMiddleware_LoopbackSkippedOutsideProduction(t *testing.T) {
	pm := MakePublicMiddleware(1, false)
	handler := pm.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError { return nil })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "127.0.0.1:5000"

		if err := handler(httptest.NewRecorder(), req); err != nil {
			t.Fatalf("loopback request %d limited: %#v", i, err)
		}
	}
}
