package middleware

import (
	"net/http"
	"time"

	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/gorilla/mux"
)

// NewCORSMiddleware allows read-only cross origin requests from any origin.
func NewCORSMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLoggingMiddleware traces every request.
// The response writer is passed through untouched so websocket upgrades can hijack it.
func NewLoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Trace("%s %s from %s took %s", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
		})
	}
}
