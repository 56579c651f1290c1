package game

import (
	"github.com/myrjola/findmoney/internal/models"
	"github.com/myrjola/findmoney/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func nonEntranceRoom(t *testing.T, g *Game) *models.Room {
	t.Helper()
	for _, room := range g.Rooms() {
		if room.Code != models.EntranceRoomCode {
			return room
		}
	}
	t.Fatal("no room besides the entrance")
	return nil
}

func TestExploreRoom_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		roomCode int
		want     string
	}{
		{name: "missing code", roomCode: 0, want: "Invalid request. A room number is required."},
		{name: "unknown code", roomCode: 99, want: "Invalid request. Room number not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "abc")
			res := g.ExploreRoom(NewProcess(ActionExploreRoom, StateCheckLockedRoom), tt.roomCode, "y")
			require.Equal(t, []string{tt.want}, res.Messages())
			require.Empty(t, res.Sounds())
			require.Equal(t, NewProcess(ActionExploreRoom, StateBegin), res.Process)
		})
	}
}

func TestExploreRoom_Unlocked(t *testing.T) {
	g := newTestGame(t, "abc")
	room := nonEntranceRoom(t, g)

	res := g.ExploreRoom(Process{}, room.Code, "")
	require.Equal(t, Process{Action: ActionExploreRoom, PID: StateFinish, Status: StatusFinish}, res.Process)

	messages := res.Messages()
	require.Len(t, messages, 1)
	lines := strings.Split(messages[0], "\n")
	require.Equal(t, "This is the "+room.Name+". You see the following:", lines[0])
	require.Len(t, lines, len(room.FurnitureCodes)+1)

	wantSounds := []string{"room_explore_1.wav", room.Filename, "room_explore_2.wav"}
	for i, code := range room.FurnitureCodes {
		f, ok := g.FurnitureByCode(code)
		require.True(t, ok)
		require.Equal(t, "- "+f.Name, lines[i+1])
		wantSounds = append(wantSounds, f.Filename)
	}
	require.Equal(t, wantSounds, res.Sounds())
}

func TestExploreRoom_LockedDeclined(t *testing.T) {
	g := newTestGame(t, "abc")
	room := nonEntranceRoom(t, g)
	room.Locked = true

	res := g.ExploreRoom(Process{}, room.Code, "")
	require.Equal(t, []string{"This room is locked. Do you have the key?", "y/n"}, res.Messages())
	require.Equal(t, []string{"room_locked.wav"}, res.Sounds())
	require.Equal(t, StateCheckLockedRoom, res.Process.PID)
	require.Equal(t, StatusContinue, res.Process.Status)

	res = g.ExploreRoom(res.Process, room.Code, "n")
	require.Equal(t, []string{"Sorry."}, res.Messages())
	require.Equal(t, []string{"sorry.wav"}, res.Sounds())
	require.Equal(t, StateFinish, res.Process.PID)
	require.True(t, room.Locked)

	res = g.ExploreRoom(Process{}, room.Code, "")
	require.Equal(t, StateCheckLockedRoom, res.Process.PID, "a declined room stays locked")
}

func TestExploreRoom_LockedUnlocked(t *testing.T) {
	for _, answer := range []string{"y", "Y"} {
		t.Run(answer, func(t *testing.T) {
			g := newTestGame(t, "abc")
			room := nonEntranceRoom(t, g)
			room.Locked = true

			res := g.ExploreRoom(Process{}, room.Code, "")
			res = g.ExploreRoom(res.Process, room.Code, answer)
			require.Equal(t, StateFinish, res.Process.PID)
			require.False(t, room.Locked)
			require.Len(t, res.Messages(), 1)
			require.True(t, strings.HasPrefix(res.Messages()[0], "This is the "+room.Name+"."))
			require.Equal(t, "room_explore_1.wav", res.Sounds()[0])

			res = g.ExploreRoom(Process{}, room.Code, "")
			require.Equal(t, StateFinish, res.Process.PID, "an unlocked room lists straight away")
		})
	}
}

func TestExploreRoom_OnlyYesUnlocks(t *testing.T) {
	for _, answer := range []string{"", "n", "yes", " y"} {
		g := newTestGame(t, "abc")
		room := nonEntranceRoom(t, g)
		room.Locked = true

		res := g.ExploreRoom(NewProcess(ActionExploreRoom, StateCheckLockedRoom), room.Code, answer)
		require.Equal(t, []string{"Sorry."}, res.Messages(), "answer %q", answer)
		require.True(t, room.Locked)
	}
}

func TestExploreRoom_FinishIsIdempotent(t *testing.T) {
	g := newTestGame(t, "abc")
	room := nonEntranceRoom(t, g)

	token := NewProcess(ActionExploreRoom, StateFinish)
	for range 3 {
		res := g.ExploreRoom(token, room.Code, "y")
		require.Equal(t, token, res.Process)
		require.Empty(t, res.Prompts)
	}
}

func TestExploreRoom_ListFurnitureState(t *testing.T) {
	g := newTestGame(t, "abc")
	room := nonEntranceRoom(t, g)
	room.Locked = true

	res := g.ExploreRoom(NewProcess(ActionExploreRoom, StateListFurniture), room.Code, "")
	require.Equal(t, StateFinish, res.Process.PID)
	require.Len(t, res.Messages(), 1)
}

func TestExploreRoom_UnknownState(t *testing.T) {
	logger, logs := testhelpers.NewBufferLogger()
	g, err := New("abc", logger)
	require.NoError(t, err)
	room := nonEntranceRoom(t, g)

	token := NewProcess(ActionExploreRoom, "no-such-state")
	res := g.ExploreRoom(token, room.Code, "")
	require.Equal(t, token, res.Process)
	require.Empty(t, res.Prompts)
	require.Contains(t, logs.String(), "using fallback result")
	require.Contains(t, logs.String(), "no-such-state")
}

func TestExploreRoom_ForeignToken(t *testing.T) {
	g := newTestGame(t, "abc")
	room := nonEntranceRoom(t, g)

	res := g.ExploreRoom(NewProcess(ActionExploreFurniture, StateCheckNoteItemInput), room.Code, "y")
	require.Equal(t, ActionExploreRoom, res.Process.Action)
	require.Equal(t, StateFinish, res.Process.PID)
	require.Len(t, res.Messages(), 1)
}
