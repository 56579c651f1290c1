package board

import (
	"bytes"
	"context"
	"github.com/myrjola/findmoney/internal/game"
	"github.com/myrjola/findmoney/internal/models"
	"github.com/myrjola/findmoney/internal/testhelpers"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

type recordingPlayer struct {
	played []string
}

func (p *recordingPlayer) Play(_ context.Context, relativePath string) error {
	p.played = append(p.played, relativePath)
	return nil
}

func newRound(t *testing.T, seed string) (*Round, *game.Game, *recordingPlayer, *bytes.Buffer) {
	t.Helper()
	logger := testhelpers.NewLogger(io.Discard)
	g, err := game.New(seed, logger)
	require.NoError(t, err)
	player := &recordingPlayer{}
	out := &bytes.Buffer{}
	return NewRound(g, player, out, logger), g, player, out
}

func TestRound_ExploreRoom(t *testing.T) {
	round, g, player, out := newRound(t, "abc")
	entrance, ok := g.Room(models.EntranceRoomCode)
	require.True(t, ok)

	require.NoError(t, round.Run(context.Background(), strings.NewReader("r 11\nq\nr 12\n")))
	require.Contains(t, out.String(), "Seed: abc")
	require.Contains(t, out.String(), "This is the "+entrance.Name+". You see the following:")
	require.Equal(t, "room_explore_1.wav", player.played[0])
	require.Equal(t, entrance.Filename, player.played[1])
	require.Equal(t, 1, strings.Count(out.String(), "You see the following"), "input after q is ignored")
}

func TestRound_AnswersGoToTheWaitingMachine(t *testing.T) {
	round, g, player, out := newRound(t, "abc")
	f, ok := g.FurnitureByCode(214)
	require.True(t, ok)
	tape := models.NewCard("Tape")
	f.Note = &models.Note{Ask: true, Item: &tape, Clue: 2}

	ctx := context.Background()
	require.False(t, round.Handle(ctx, "f 214"))
	require.Contains(t, out.String(), "Do you have the Tape?")
	require.Equal(t, game.StatusContinue, round.process.Status)

	// "q" is an answer here, not a command.
	require.False(t, round.Handle(ctx, "q"))
	require.Contains(t, out.String(), "Sorry.")
	require.Equal(t, game.StatusFinish, round.process.Status)
	require.Equal(t, "sorry.wav", player.played[len(player.played)-1])

	require.False(t, round.Handle(ctx, "f 214"))
	require.False(t, round.Handle(ctx, " Y "))
	require.Contains(t, out.String(), "You found a clue!")
	require.Equal(t, 1, g.CluesFound())
	require.True(t, round.Handle(ctx, "q"))
}

// echoPlayer writes the sounds into the same output as the messages.
type echoPlayer struct {
	out *bytes.Buffer
}

func (p echoPlayer) Play(_ context.Context, relativePath string) error {
	p.out.WriteString("[" + relativePath + "]\n")
	return nil
}

func TestRound_PromptOrder(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	g, err := game.New("abc", logger)
	require.NoError(t, err)
	f, ok := g.FurnitureByCode(214)
	require.True(t, ok)
	tape := models.NewCard("Tape")
	f.Note = &models.Note{Ask: true, Item: &tape, Clue: 2}

	out := &bytes.Buffer{}
	round := NewRound(g, echoPlayer{out: out}, out, logger)
	require.False(t, round.Handle(context.Background(), "f 214"))

	want := "Do you have the Tape?\n[ask_item.wav]\n[" + tape.Filename + "]\ny/n: \n"
	require.Contains(t, out.String(), want)
}

func TestRound_BadCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "unknown", line: "x", want: "Commands:"},
		{name: "missing code", line: "r", want: "Commands:"},
		{name: "not a number", line: "f lamp", want: `Codes are numbers, got "lamp".`},
		{name: "unknown room", line: "r 99", want: "Invalid request. Room number not found."},
		{name: "zero furniture", line: "f 0", want: "Invalid request. A furniture number is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round, _, _, out := newRound(t, "abc")
			require.False(t, round.Handle(context.Background(), tt.line))
			require.Contains(t, out.String(), tt.want)
			require.NotEqual(t, game.StatusContinue, round.process.Status)
		})
	}
}

func TestWriteLayout(t *testing.T) {
	g, err := game.New("abc", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	locked := g.LockRooms()

	var out bytes.Buffer
	require.NoError(t, WriteLayout(&out, g))
	layout := out.String()

	require.True(t, strings.HasPrefix(layout, "Seed: abc\n"))
	for _, room := range g.Rooms() {
		require.Contains(t, layout, room.String()+"\n")
	}
	require.Equal(t, len(locked), strings.Count(layout, "[LOCKED]"))
	require.Equal(t, 1, strings.Count(layout, "MONEY"))
	require.Equal(t, 1, strings.Count(layout, "trapdoor"))
	require.Equal(t, len(g.Furniture())-26, strings.Count(layout, "no note"))

	roomsSection := layout[strings.Index(layout, "Rooms:"):strings.Index(layout, "Furniture:")]
	require.True(t, strings.Index(roomsSection, "11: ") < strings.Index(roomsSection, "31: "), "rooms are ordered by code")
}

func TestLayoutCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.AddGroup(Group)
	cmd.AddCommand(Layout)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"layout", "--seed", "abc", "--lock-rooms"})

	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(out.String(), "Seed: abc\n"))
	require.Contains(t, out.String(), "[LOCKED]")
}

func TestLoadConfig(t *testing.T) {
	env := func(values map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		}
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("assets", "", "")
	cmd.Flags().String("player", "", "")

	cfg, err := loadConfig(cmd, env(nil))
	require.NoError(t, err)
	require.Equal(t, config{Assets: "./assets/game-audio", Player: ""}, cfg)

	cfg, err = loadConfig(cmd, env(map[string]string{"FINDMONEY_ASSETS": "/srv/audio", "FINDMONEY_PLAYER": "aplay -q"}))
	require.NoError(t, err)
	require.Equal(t, config{Assets: "/srv/audio", Player: "aplay -q"}, cfg)

	require.NoError(t, cmd.Flags().Set("assets", "./flag-audio"))
	cfg, err = loadConfig(cmd, env(map[string]string{"FINDMONEY_ASSETS": "/srv/audio"}))
	require.NoError(t, err)
	require.Equal(t, "./flag-audio", cfg.Assets)
}
