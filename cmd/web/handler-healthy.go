package main

import (
	"github.com/justinas/nosurf"
	"net/http"
)

// healthy responds with a JSON object indicating that the server is healthy.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// csrfToken hands out the token the state-changing endpoints expect in the X-CSRF-Token header.
func (app *application) csrfToken(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]string{"token": nosurf.Token(r)})
}
