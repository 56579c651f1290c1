// Package board holds the commands for running a game from the terminal.
package board

import (
	"github.com/myrjola/findmoney/internal/audio"
	"github.com/myrjola/findmoney/internal/envstruct"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"github.com/myrjola/findmoney/internal/logging"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
)

var Group = &cobra.Group{
	ID:    "board",
	Title: "Game operations",
}

type config struct {
	// Assets is the directory holding the sound prompts.
	Assets string `env:"FINDMONEY_ASSETS" envDefault:"./assets/game-audio"`
	// Player is the command sound files are passed to, e.g. "aplay -q". Empty only logs the sounds.
	Player string `env:"FINDMONEY_PLAYER" envDefault:""`
}

func init() {
	Play.Flags().String("seed", "", "seed of the board, empty generates one")
	Play.Flags().Bool("lock-rooms", false, "lock one or two rooms")
	Play.Flags().String("assets", "", "sound asset directory, overrides FINDMONEY_ASSETS")
	Play.Flags().String("player", "", "sound player command, overrides FINDMONEY_PLAYER")

	Layout.Flags().String("seed", "", "seed of the board, empty generates one")
	Layout.Flags().Bool("lock-rooms", false, "lock one or two rooms")
}

var Play = &cobra.Command{
	Use:     "play",
	GroupID: "board",
	Short:   "Play a game",
	Long: `Plays a game in the terminal. Type "r <code>" to explore a room, "f <code>" to explore a piece of
furniture and "q" to quit. Answer the questions of the game with y or n.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, os.LookupEnv)
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr())

		var g *game.Game
		if g, err = newGame(cmd, logger); err != nil {
			return err
		}

		round := NewRound(g, audio.NewAssetPlayer(logger, cfg.Assets, cfg.Player), cmd.OutOrStdout(), logger)
		return round.Run(cmd.Context(), cmd.InOrStdin())
	},
}

var Layout = &cobra.Command{
	Use:     "layout",
	GroupID: "board",
	Short:   "Print the board layout",
	Long:    `Prints the rooms and every hidden note so that the host can set up the physical board.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := newGame(cmd, newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		return WriteLayout(cmd.OutOrStdout(), g)
	},
}

// loadConfig reads the environment. Flags that were set take precedence.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (config, error) {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return config{}, errors.Wrap(err, "populate config")
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets, _ = cmd.Flags().GetString("assets")
	}
	if cmd.Flags().Changed("player") {
		cfg.Player, _ = cmd.Flags().GetString("player")
	}
	return cfg, nil
}

func newGame(cmd *cobra.Command, logger *slog.Logger) (*game.Game, error) {
	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		return nil, errors.Wrap(err, "invalid seed flag")
	}
	var lockRooms bool
	if lockRooms, err = cmd.Flags().GetBool("lock-rooms"); err != nil {
		return nil, errors.Wrap(err, "invalid lock-rooms flag")
	}

	var g *game.Game
	if g, err = game.New(seed, logger); err != nil {
		return nil, errors.Wrap(err, "new game")
	}
	if lockRooms {
		g.LockRooms()
	}
	return g, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(logging.NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelInfo,
		ReplaceAttr: nil,
	})))
}
