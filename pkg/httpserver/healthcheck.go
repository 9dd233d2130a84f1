package httpserver

import "net/http"

// LivenessHandler always answers 200 ALIVE.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writePlain(w, http.StatusOK, "ALIVE")
	}
}

// ReadinessHandler answers 200 READY. The service has no external
// dependencies, so a process that routes requests is ready.
func ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writePlain(w, http.StatusOK, "READY")
	}
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
