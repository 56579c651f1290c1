// Package audio plays the sound prompts produced by the game.
package audio

import (
	"context"
	"fmt"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrAssetNotFound is returned when a sound prompt has no file in the assets directory.
var ErrAssetNotFound = errors.NewSentinel("sound asset not found")

// Player plays a sound asset given by its path relative to the assets directory.
type Player interface {
	Play(ctx context.Context, relativePath string) error
}

// AssetPlayer resolves sound prompts inside an assets directory.
//
// With a command configured, such as "aplay -q", the resolved file is appended to its arguments and the
// command is run to completion. Without one the asset is only logged.
type AssetPlayer struct {
	logger  *slog.Logger
	dir     string
	command []string
}

// NewAssetPlayer creates an AssetPlayer for the assets in dir. command is split on whitespace.
func NewAssetPlayer(logger *slog.Logger, dir string, command string) *AssetPlayer {
	return &AssetPlayer{
		logger:  logger.With("source", "AssetPlayer"),
		dir:     dir,
		command: strings.Fields(command),
	}
}

// Resolve returns the file relativePath refers to. Paths escaping the assets directory are not found.
func (p *AssetPlayer) Resolve(relativePath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relativePath))
	if relativePath == "" || filepath.IsAbs(cleaned) || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errors.Wrap(ErrAssetNotFound, "resolve asset", slog.String("path", relativePath))
	}
	path := filepath.Join(p.dir, cleaned)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", errors.Wrap(ErrAssetNotFound, "stat asset", slog.String("path", path))
	}
	return path, nil
}

// Play implements Player.
func (p *AssetPlayer) Play(ctx context.Context, relativePath string) error {
	path, err := p.Resolve(relativePath)
	if err != nil {
		return err
	}
	if len(p.command) == 0 {
		p.logger.LogAttrs(ctx, slog.LevelInfo, "playing sound", slog.String("path", path))
		return nil
	}

	args := append(p.command[1:len(p.command):len(p.command)], path)
	cmd := exec.CommandContext(ctx, p.command[0], args...) //nolint:gosec // the command comes from configuration
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(err, "run player", slog.String("command", p.command[0]),
			slog.String("path", path), slog.String("output", string(output)))
	}
	return nil
}

// PlayPrompts plays the sound prompts in order. A missing asset does not stop the rest from playing.
func PlayPrompts(ctx context.Context, player Player, prompts []game.Prompt) error {
	return Present(ctx, player, io.Discard, prompts)
}

// Present goes through the prompts in order, writing each message as a line to w and playing each sound.
// A missing asset does not stop the rest of the prompts.
func Present(ctx context.Context, player Player, w io.Writer, prompts []game.Prompt) error {
	var errs []error
	for _, prompt := range prompts {
		switch prompt.Kind {
		case game.PromptMessage:
			if _, err := fmt.Fprintln(w, prompt.Value); err != nil {
				return errors.Join(append(errs, errors.Wrap(err, "write message"))...)
			}
		case game.PromptSound:
			if err := ctx.Err(); err != nil {
				return errors.Join(append(errs, err)...)
			}
			if err := player.Play(ctx, prompt.Value); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
