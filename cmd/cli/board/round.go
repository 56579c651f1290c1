package board

import (
	"bufio"
	"context"
	"fmt"
	"github.com/myrjola/findmoney/internal/audio"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const usage = `Commands:
  r <code>  explore a room
  f <code>  explore a piece of furniture
  q         quit`

// Round drives one game from lines of player input.
type Round struct {
	game    *game.Game
	player  audio.Player
	out     io.Writer
	logger  *slog.Logger
	action  game.Action
	code    int
	process game.Process
}

// NewRound creates a round over g that prints to out and plays sounds with player.
func NewRound(g *game.Game, player audio.Player, out io.Writer, logger *slog.Logger) *Round {
	return &Round{
		game:    g,
		player:  player,
		out:     out,
		logger:  logger.With("source", "Round"),
		action:  "",
		code:    0,
		process: game.Process{},
	}
}

// Run reads lines from in until the player quits or in is exhausted.
func (r *Round) Run(ctx context.Context, in io.Reader) error {
	r.printf("Seed: %s\n%s\n", r.game.Seed(), usage)
	scanner := bufio.NewScanner(in)
	for {
		r.printf("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "read input")
			}
			return nil
		}
		if r.Handle(ctx, scanner.Text()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "round cancelled")
		}
	}
}

// Handle processes one line and reports whether the player quit. While a state machine waits for an answer
// the line is the answer.
func (r *Round) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if r.process.Status == game.StatusContinue {
		r.step(ctx, line)
		return false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch {
	case fields[0] == "q":
		return true
	case (fields[0] == "r" || fields[0] == "f") && len(fields) == 2: //nolint:mnd // command and code
		code, err := strconv.Atoi(fields[1])
		if err != nil {
			r.printf("Codes are numbers, got %q.\n", fields[1])
			return false
		}
		r.action = game.ActionExploreRoom
		if fields[0] == "f" {
			r.action = game.ActionExploreFurniture
		}
		r.code = code
		r.process = game.Process{}
		r.step(ctx, "")
	default:
		r.printf("%s\n", usage)
	}
	return false
}

func (r *Round) step(ctx context.Context, userInput string) {
	var result game.Result
	switch r.action { //nolint:exhaustive // only the two actions exist
	case game.ActionExploreRoom:
		result = r.game.ExploreRoom(r.process, r.code, userInput)
	case game.ActionExploreFurniture:
		result = r.game.ExploreFurniture(r.process, r.code, userInput)
	default:
		return
	}
	r.process = result.Process

	if err := audio.Present(ctx, r.player, r.out, result.Prompts); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "failed playing sounds", errors.SlogError(err))
	}
}

func (r *Round) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}
