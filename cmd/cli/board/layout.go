package board

import (
	"fmt"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"github.com/myrjola/findmoney/internal/models"
	"io"
	"slices"
	"strings"
)

// WriteLayout writes the rooms ordered by code followed by every piece of furniture and its note.
func WriteLayout(w io.Writer, g *game.Game) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Seed: %s\n\nRooms:\n", g.Seed())

	rooms := g.Rooms()
	slices.SortFunc(rooms, func(a, b *models.Room) int {
		return a.Code - b.Code
	})
	for _, room := range rooms {
		fmt.Fprintf(&b, "%s\n", room)
	}

	b.WriteString("\nFurniture:\n")
	for _, f := range g.Furniture() {
		fmt.Fprintf(&b, "%s - %s\n", f, f.Note)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write layout")
	}
	return nil
}
