package httpx

import (
	"net/http"

	"github.com/opsbridge/snbridge/pkg/logger"
)

// CommonMiddleware returns an http.Handler that sets up typical
// headers (CORS, etc.) and logs the request before calling the next
// handler.
func CommonMiddleware(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		if log != nil {
			log.Debug("[HTTP] %s %s", r.Method, r.URL.Path)
		}

		next.ServeHTTP(w, r)
	})
}
