package http

import "net/http"

// NotFoundHandler catches everything outside the /api routes so unknown
// paths get the same JSON error envelope as the rest of the API.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
}
