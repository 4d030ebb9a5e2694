package middlewares

import (
	"net/http"
)

// corsAllowedHeaders lists the headers a browser may send cross-origin.
const corsAllowedHeaders = "Content-Type, Authorization"

// CORSMiddleware returns a middleware implementing the permissive
// cross-origin policy of the API: every response carries a wildcard
// allow-origin header, and OPTIONS preflights are answered with an
// empty 200 advertising the methods of the route group.
func CORSMiddleware(allowedMethods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
