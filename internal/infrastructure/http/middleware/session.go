package middleware

import (
	"context"
	"net/http"

	"github.com/yuzvak/nhh-storefront/internal/pkg/generator"
)

const (
	SessionCookie = "nhh_session"
	SessionHeader = "X-Session-ID"
)

type sessionKey struct{}

// NewSessionMiddleware resolves the shopper's session from the X-Session-ID
// header or the session cookie, minting a new id (and cookie) when neither
// carries a valid one. The id is echoed back in the X-Session-ID header.
func NewSessionMiddleware(ids *generator.CodeGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if !generator.ValidSessionID(id) {
				id = ""
				if c, err := r.Cookie(SessionCookie); err == nil && generator.ValidSessionID(c.Value) {
					id = c.Value
				}
			}

			if id == "" {
				id = ids.SessionID()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
