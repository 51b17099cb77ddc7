package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// sessionIDKey carries the tenant session ID through the request context
const sessionIDKey contextKey = "sessionID"

// SessionHeader identifies the tenant's browsing session. Each session gets
// its own booking flow; the header value is opaque to the server.
const SessionHeader = "X-Session-ID"

// Session requires the X-Session-ID header on flow routes and stores its
// value in the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "cabeçalho X-Session-ID obrigatório",
			})
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session ID stored by the Session middleware.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}
