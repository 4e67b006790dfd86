package handler

import "net/http"

const (
	allowOrigin  = "*"
	allowMethods = "GET, POST, PUT, DELETE"
	allowHeaders = "Content-Type, Authorization"
)

// CORS sets the same permissive cross-origin headers on every response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		next.ServeHTTP(w, r)
	})
}
