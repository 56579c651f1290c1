package main

import (
	"context"
	"github.com/myrjola/findmoney/internal/e2etest"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"github.com/myrjola/findmoney/internal/logging"
	"log/slog"
	"os"
	"time"
)

// PlayRound starts a game and explores the first room and its furniture.
func PlayRound(ctx context.Context, logger *slog.Logger, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	summary, err := client.NewGame(ctx, "", false)
	if err != nil {
		return errors.Wrap(err, "new game")
	}
	ctx = logging.WithAttrs(ctx, slog.String("gameID", summary.ID), slog.String("seed", summary.Seed))
	if len(summary.Rooms) == 0 || len(summary.Rooms[0].Furniture) == 0 {
		return errors.New("empty board")
	}
	room := summary.Rooms[0]

	var result game.Result
	if result, err = client.ExploreRoom(ctx, game.Process{}, room.Code, ""); err != nil {
		return errors.Wrap(err, "explore room", slog.Int("roomCode", room.Code))
	}
	if result.Process.Status != game.StatusFinish {
		return errors.New("room exploration did not finish", slog.String("pid", string(result.Process.PID)))
	}

	furniture := room.Furniture[0]
	if result, err = client.ExploreFurniture(ctx, game.Process{}, furniture.Code, ""); err != nil {
		return errors.Wrap(err, "explore furniture", slog.Int("furnitureCode", furniture.Code))
	}
	for result.Process.Status == game.StatusContinue {
		if result, err = client.ExploreFurniture(ctx, result.Process, furniture.Code, "n"); err != nil {
			return errors.Wrap(err, "answer furniture", slog.Int("furnitureCode", furniture.Code))
		}
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "played round", slog.Any("messages", result.Messages()))

	if _, err = client.CurrentGame(ctx); err != nil {
		return errors.Wrap(err, "current game")
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = PlayRound(ctx, logger, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error playing round", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
