// Package hello exposes the greeting and health payloads as HTTP Cloud Functions.
package hello

import (
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// These mirror the main service's payloads.
const (
	Greeting = "Hello DevOps World!"
	Healthy  = "OK"
)

func init() {
	functions.HTTP("Hello", helloHandler)
	functions.HTTP("Health", healthHandler)
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, Greeting)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, Healthy)
}

// writeText serves body for GET and HEAD and rejects every other method.
func writeText(w http.ResponseWriter, r *http.Request, body string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(body))
}
