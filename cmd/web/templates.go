package main

import (
	"embed"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/session"
	"html/template"
	"net/http"
	"slices"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// parseTemplates parses the base layout together with the pages. Every page defines a template named "page".
func parseTemplates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, errors.Wrap(err, "parse template files")
	}
	return t, nil
}

type boardTemplateData struct {
	// Game is nil when the session has no game.
	Game *session.Summary
}

// board renders the board of the session's game for the host setting up the physical rooms.
func (app *application) board(w http.ResponseWriter, r *http.Request) {
	data := boardTemplateData{Game: nil}

	if gameID := app.sessionManager.GetString(r.Context(), gameIDSessionKey); gameID != "" {
		summary, err := app.games.Summary(gameID)
		switch {
		case err == nil:
			slices.SortFunc(summary.Rooms, func(a, b session.RoomSummary) int {
				return a.Code - b.Code
			})
			data.Game = &summary
		case errors.Is(err, session.ErrGameNotFound):
			app.sessionManager.Remove(r.Context(), gameIDSessionKey)
		default:
			app.serverError(w, r, err)
			return
		}
	}

	app.render(w, r, http.StatusOK, data)
}
