package http

import "net/http"

// HealthHandler reports liveness for cashier terminals and deploy probes.
// It answers before auth and CORS, so it must never expose state.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
