package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewServerHandlerNilMux(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServerHandler(ServerHandlerConfig{}).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestNewServerHandlerCorsOutsideProduction(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := false
	handler := NewServerHandler(ServerHandlerConfig{
		Mux:     mux,
		DevHost: "http://localhost:3000",
		Wrap: func(next http.Handler) http.Handler {
			wrapped = true
			return next
		},
	})

	req := httptest.NewRequest("GET", "/posts/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !wrapped {
		t.Fatalf("expected wrap to be applied")
	}

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

func TestNewServerHandlerNoCorsInProduction(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	NewServerHandler(ServerHandlerConfig{Mux: mux, IsProduction: true}).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no cors header, got %q", got)
	}
}

func TestRunServerNil(t *testing.T) {
	if err := RunServer(":0", nil); err == nil {
		t.Fatalf("expected error for nil server")
	}
}
