package main

import (
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"log/slog"
	"net/http"
)

type exploreRoomRequest struct {
	Process   game.Process `json:"process"`
	RoomCode  int          `json:"roomCode"`
	UserInput string       `json:"userInput"`
}

type exploreFurnitureRequest struct {
	Process       game.Process `json:"process"`
	FurnitureCode int          `json:"furnitureCode"`
	UserInput     string       `json:"userInput"`
}

func (app *application) exploreRoom(w http.ResponseWriter, r *http.Request) {
	var req exploreRoomRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	gameID, ok := app.sessionGameID(w, r)
	if !ok {
		return
	}

	result, err := app.games.ExploreRoom(r.Context(), gameID, req.Process, req.RoomCode, req.UserInput)
	if err != nil {
		app.sessionError(w, r, errors.Wrap(err, "explore room", slog.Int("roomCode", req.RoomCode)))
		return
	}
	app.metrics.exploreSteps.WithLabelValues(string(game.ActionExploreRoom)).Inc()
	app.writeJSON(w, r, http.StatusOK, result)
}

func (app *application) exploreFurniture(w http.ResponseWriter, r *http.Request) {
	var req exploreFurnitureRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	gameID, ok := app.sessionGameID(w, r)
	if !ok {
		return
	}

	result, err := app.games.ExploreFurniture(r.Context(), gameID, req.Process, req.FurnitureCode, req.UserInput)
	if err != nil {
		app.sessionError(w, r, errors.Wrap(err, "explore furniture", slog.Int("furnitureCode", req.FurnitureCode)))
		return
	}
	app.metrics.exploreSteps.WithLabelValues(string(game.ActionExploreFurniture)).Inc()
	app.writeJSON(w, r, http.StatusOK, result)
}
