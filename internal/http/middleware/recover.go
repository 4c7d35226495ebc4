package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/onalabs/ona-backend/internal/observability"
)

// Recover creates a middleware that converts panics into HTTP 500 responses.
// The panic value is logged with its context fields; the client gets a
// generic message.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logger := observability.FromContext(r.Context())
				logger.Error("panic during request handling",
					observability.String("panic", fmt.Sprintf("%v", rec)),
					observability.String("path", r.URL.Path),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": fmt.Sprintf("Internal error: %v", rec),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
