package main

import (
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/session"
	"log/slog"
	"net/http"
)

// gameIDSessionKey stores the game ID of the session's current game.
const gameIDSessionKey = "gameID"

type createGameRequest struct {
	// Seed replays a board. Empty generates a new one.
	Seed      string `json:"seed"`
	LockRooms bool   `json:"lockRooms"`
}

// createGame starts a new game for the session. It replaces the previous game of the session.
func (app *application) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	ctx := r.Context()

	previous := app.sessionManager.GetString(ctx, gameIDSessionKey)
	summary, err := app.games.Create(ctx, req.Seed, req.LockRooms, previous)
	if err != nil {
		app.sessionError(w, r, errors.Wrap(err, "create game"))
		return
	}
	app.metrics.gamesStarted.Inc()

	if err = app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.sessionManager.Put(ctx, gameIDSessionKey, summary.ID)

	app.logger.LogAttrs(ctx, slog.LevelInfo, "game started",
		slog.String("gameID", summary.ID), slog.String("seed", summary.Seed))
	app.writeJSON(w, r, http.StatusOK, summary)
}

// currentGame returns the summary of the session's game.
func (app *application) currentGame(w http.ResponseWriter, r *http.Request) {
	summary, ok := app.sessionSummary(w, r)
	if !ok {
		return
	}
	app.writeJSON(w, r, http.StatusOK, summary)
}

// sessionSummary looks up the game of the session. It writes the error response and returns false when the
// session has no game.
func (app *application) sessionSummary(w http.ResponseWriter, r *http.Request) (session.Summary, bool) {
	gameID, ok := app.sessionGameID(w, r)
	if !ok {
		return session.Summary{}, false
	}
	summary, err := app.games.Summary(gameID)
	if err != nil {
		app.sessionError(w, r, err)
		return session.Summary{}, false
	}
	return summary, true
}

func (app *application) sessionGameID(w http.ResponseWriter, r *http.Request) (string, bool) {
	gameID := app.sessionManager.GetString(r.Context(), gameIDSessionKey)
	if gameID == "" {
		app.notFound(w, r)
		return "", false
	}
	return gameID, true
}
