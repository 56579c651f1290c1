package game

import (
	"context"
	"fmt"
	"github.com/myrjola/findmoney/internal/models"
	"log/slog"
	"strings"
)

// ExploreRoom runs one step of the explore-room machine for the room with roomCode.
//
// A zero roomCode means no room was given. userInput is only read in StateCheckLockedRoom.
func (g *Game) ExploreRoom(process Process, roomCode int, userInput string) Result {
	pid := process.PID
	if process.Action != "" && process.Action != ActionExploreRoom {
		pid = StateBegin
	}
	result := newResult(ActionExploreRoom, pid)

	if roomCode == 0 {
		result.message("Invalid request. A room number is required.")
		result.moveTo(StateBegin)
		return *result
	}
	room, ok := g.roomsByCode[roomCode]
	if !ok {
		result.message("Invalid request. Room number not found.")
		result.moveTo(StateBegin)
		return *result
	}

	switch result.Process.PID { //nolint:exhaustive // furniture states fall back
	case StateBegin:
		if room.Locked {
			result.message("This room is locked. Do you have the key?")
			result.sound("room_locked.wav")
			result.message("y/n")
			result.moveTo(StateCheckLockedRoom)
			return *result
		}
		g.listFurniture(result, room)
	case StateCheckLockedRoom:
		if !affirmative(userInput) {
			result.message("Sorry.")
			result.sound("sorry.wav")
			result.moveTo(StateFinish)
			return *result
		}
		room.Locked = false
		g.listFurniture(result, room)
	case StateListFurniture:
		g.listFurniture(result, room)
	case StateFinish:
	default:
		g.logger.LogAttrs(context.Background(), slog.LevelWarn, "using fallback result",
			slog.String("action", string(ActionExploreRoom)), slog.String("pid", string(pid)))
	}

	return *result
}

func (g *Game) listFurniture(result *Result, room *models.Room) {
	var b strings.Builder
	fmt.Fprintf(&b, "This is the %s. You see the following:", room.Name)
	pieces := make([]*models.Furniture, 0, len(room.FurnitureCodes))
	for _, code := range room.FurnitureCodes {
		f, ok := g.furnitureByCode[code]
		if !ok {
			continue
		}
		pieces = append(pieces, f)
		fmt.Fprintf(&b, "\n- %s", f.Name)
	}

	result.message(b.String())
	result.sound("room_explore_1.wav")
	result.sound(room.Filename)
	result.sound("room_explore_2.wav")
	for _, f := range pieces {
		result.sound(f.Filename)
	}
	result.moveTo(StateFinish)
}
