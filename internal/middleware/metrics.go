package middleware

import "net/http"

type RequestRecorder interface {
	Request(method string, code int)
}

// Metrics counts handled requests by method and status code.
func Metrics(rec RequestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := wrapWriter(w)
			next.ServeHTTP(wrapped, r)
			rec.Request(r.Method, wrapped.code())
		})
	}
}
