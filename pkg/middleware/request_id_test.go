package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/portal"
)

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	var seen string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		seen = portal.RequestID(r)

		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(portal.RequestIDHeader, "abc-123")

	rec := httptest.NewRecorder()
	handler(rec, req)

	if seen != "abc-123" {
		t.Fatalf("expected incoming id, got %q", seen)
	}
}

func TestRequestIDReplacesOversizedHeader(t *testing.T) {
	var seen string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		seen = portal.RequestID(r)

		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(portal.RequestIDHeader, strings.Repeat("x", 200))

	handler(httptest.NewRecorder(), req)

	if len(seen) != 36 {
		t.Fatalf("expected generated uuid, got %q", seen)
	}
}
