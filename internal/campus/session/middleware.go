package session

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// Middleware attaches the caller's session, if any, to the request context.
// It never rejects a request; see RequirePage and RequireAPI.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Load(r)
		switch {
		case err == nil:
			ctx := WithContext(r.Context(), s)
			ctx = slogx.WithEmail(ctx, s.Email)
			r = r.WithContext(ctx)
		case !errors.Is(err, ErrNotFound):
			slogx.FromContext(r.Context()).Warn("session lookup failed", "err", err)
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePage redirects callers without a session to the login page.
func RequirePage(loginPath string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAPI answers callers without a session with 401 JSON.
func RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "Session expired or missing, please log in")
			return
		}
		next.ServeHTTP(w, r)
	})
}
