package hello

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHelloHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	helloHandler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Hello DevOps World!") {
		t.Fatalf("expected greeting, got %q", resp.Body.String())
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	healthHandler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "OK" {
		t.Fatalf("expected body exactly OK, got %q", resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain content type, got %q", ct)
	}
}

func TestHeadHasNoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	resp := httptest.NewRecorder()
	healthHandler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body for HEAD, got %q", resp.Body.String())
	}
}

func TestRejectsWriteMethods(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/", nil)
		resp := httptest.NewRecorder()
		helloHandler(resp, req)

		if resp.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405, got %d", method, resp.Code)
		}
		if allow := resp.Header().Get("Allow"); allow != "GET, HEAD" {
			t.Fatalf("%s: expected Allow: GET, HEAD, got %q", method, allow)
		}
	}
}
