package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouteLabelCollapsesResourceIDs(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/healthz", "/healthz"},
		{"/api/v1/documents", "/api/v1/documents"},
		{"/api/v1/documents/7e6f", "/api/v1/documents/{document_id}"},
		{"/api/v1/comparisons/7e6f", "/api/v1/comparisons/{comparison_id}"},
		{"/api/v1/comparisons/7e6f/export", "/api/v1/comparisons/{comparison_id}/export"},
	}
	for _, c := range cases {
		if got := routeLabel(c.path); got != c.want {
			t.Errorf("routeLabel(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestRequestIDMiddlewareEchoesHeader(t *testing.T) {
	var seen string
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "req-42" {
		t.Errorf("context request id = %q, want req-42", seen)
	}
	if got := rec.Header().Get(requestIDHeader); got != "req-42" {
		t.Errorf("response header = %q, want req-42", got)
	}
}

func TestRequestIDMiddlewareGeneratesWhenAbsent(t *testing.T) {
	handler := requestIDMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Header().Get(requestIDHeader) == "" {
		t.Error("expected a generated request id header")
	}
}
