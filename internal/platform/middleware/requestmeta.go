package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"userhub/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// RequestMeta stamps every request with a correlation id and a single
// request timestamp. Incoming X-Request-ID values are honored so ids
// correlate across services; the timestamp keeps every write within one
// request carrying the same created/updated stamp.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, requestcontext.Now(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
