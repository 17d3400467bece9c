package middlewares

import "net/http"

const (
	allowedHeaders = "authorization, x-client-info, apikey, content-type"
	allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
)

func SetCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", allowedHeaders)
	h.Set("Access-Control-Allow-Methods", allowedMethods)
}

// CorsMiddleware allows any origin and answers preflight requests directly.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetCORSHeaders(w.Header())

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
