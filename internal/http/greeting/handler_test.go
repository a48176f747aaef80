package greeting

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("GreetingTest", "test"))
	Register(api)
	return router
}

func TestGreetingContainsMessage(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Hello DevOps World!") {
		t.Fatalf("expected greeting in body, got %q", resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain; charset=utf-8, got %s", ct)
	}
}

func TestGreetingIgnoresRequestInput(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"query string", httptest.NewRequest(http.MethodGet, "/?name=ops&debug=1", nil)},
		{"body", httptest.NewRequest(http.MethodGet, "/", strings.NewReader(`{"name":"ops"}`))},
		{"headers", func() *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Accept", "application/cbor")
			r.Header.Set("Accept-Language", "fi")
			return r
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, tt.req)

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			if got := resp.Body.String(); got != Message {
				t.Fatalf("expected %q, got %q", Message, got)
			}
		})
	}
}
