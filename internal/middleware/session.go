package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/config"
)

type CtxKey int

const (
	CtxSessionClaims CtxKey = iota
)

// Session puts the claims of a valid session cookie into the request
// context. An invalid cookie is cleared and the request goes on without
// claims.
func Session(log *slog.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParseSessionClaims(r)
			if err != nil {
				if !errors.Is(err, http.ErrNoCookie) {
					log.Debug("dropping session cookie", slog.Any("error", err))
					cookies.Clear(w)
				}
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxSessionClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionClaims(r *http.Request) (*config.SessionClaims, bool) {
	claims, ok := r.Context().Value(CtxSessionClaims).(*config.SessionClaims)
	return claims, ok
}
