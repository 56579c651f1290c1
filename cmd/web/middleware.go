package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"github.com/justinas/nosurf"
	"github.com/myrjola/findmoney/internal/logging"
	"log/slog"
	"net/http"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy",
			`default-src 'self';
				   object-src 'none';
				   base-uri 'none';`)

		w.Header().Set("Referrer-Policy", "origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-XSS-Protection", "0")

		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			proto  = r.Proto
			method = r.Method
			uri    = r.URL.RequestURI()
		)

		ctx := logging.WithAttrs(r.Context(), slog.String("path", r.URL.Path))
		app.logger.LogAttrs(ctx, slog.LevelDebug, "received request",
			slog.String("proto", proto), slog.String("method", method), slog.String("uri", uri))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// gameContext adds the hashed session token and the game ID of the session to the log attributes.
// It must run after the session is loaded.
func (app *application) gameContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if token := app.sessionManager.Token(ctx); token != "" {
			sum := sha256.Sum256([]byte(token))
			ctx = logging.WithAttrs(ctx, slog.String("session", hex.EncodeToString(sum[:4])))
		}
		if gameID := app.sessionManager.GetString(ctx, gameIDSessionKey); gameID != "" {
			ctx = logging.WithAttrs(ctx, slog.String("gameID", gameID))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// noSurf implements CSRF protection using https://github.com/justinas/nosurf
//
// Clients fetch the token from /api/csrf and send it back in the X-CSRF-Token header.
func (app *application) noSurf(next http.Handler) http.Handler {
	csrfHandler := nosurf.New(next)
	csrfHandler.SetBaseCookie(http.Cookie{ //nolint:exhaustruct // defaults suffice for the rest
		HttpOnly: true,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	csrfHandler.SetFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "CSRF check failed",
			slog.String("reason", fmt.Sprint(nosurf.Reason(r))))
		app.clientError(w, r, http.StatusForbidden)
	}))

	return csrfHandler
}
