package main

import (
	"github.com/justinas/alice"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.Handle("GET /metrics", app.metrics.handler())

	dynamic := alice.New(app.sessionManager.LoadAndSave, app.noSurf, app.gameContext)

	mux.Handle("GET /{$}", dynamic.ThenFunc(app.board))
	mux.Handle("GET /api/csrf", dynamic.ThenFunc(app.csrfToken))
	mux.Handle("POST /api/games", dynamic.ThenFunc(app.createGame))
	mux.Handle("GET /api/games/current", dynamic.ThenFunc(app.currentGame))
	mux.Handle("POST /api/explore-room", dynamic.ThenFunc(app.exploreRoom))
	mux.Handle("POST /api/explore-furniture", dynamic.ThenFunc(app.exploreFurniture))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
