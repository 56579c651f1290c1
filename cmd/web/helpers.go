package main

import (
	"bytes"
	"encoding/json"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/session"
	"io"
	"log/slog"
	"net/http"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 16

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
		slog.String("method", method), slog.String("uri", uri))
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

// sessionError maps the errors of the game store to responses.
func (app *application) sessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrGameNotFound):
		app.notFound(w, r)
	case errors.Is(err, session.ErrTooManyGames):
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "game limit reached", errors.SlogError(err))
		app.clientError(w, r, http.StatusServiceUnavailable)
	default:
		app.serverError(w, r, err)
	}
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
// It writes a 400 response and returns false when the body is malformed.
func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "malformed request body", slog.String("err", err.Error()))
		app.clientError(w, r, http.StatusBadRequest)
		return false
	}
	return true
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		app.serverError(w, r, errors.Wrap(err, "encode response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, data any) {
	buf := new(bytes.Buffer)
	if err := app.templates.ExecuteTemplate(buf, "base", data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
