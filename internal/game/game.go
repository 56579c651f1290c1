// Package game builds a seeded board and runs the explore-room and explore-furniture state machines over it.
//
// A Game is a single-session state holder. It is not safe for concurrent use; callers that share a game
// must serialize their calls.
package game

import (
	"context"
	"fmt"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/models"
	"github.com/myrjola/findmoney/internal/random"
	"log/slog"
	"slices"
)

var (
	// ErrInconsistentRooms means the room table and the room code table differ in length.
	ErrInconsistentRooms = errors.NewSentinel("room names and room codes do not match")
	// ErrRoomCapacity means the furniture catalog does not fit in the rooms.
	ErrRoomCapacity = errors.NewSentinel("furniture does not fit in the rooms")
	// ErrNotEnoughFurniture means there are fewer pieces of furniture than notes to hide.
	ErrNotEnoughFurniture = errors.NewSentinel("not enough furniture for the notes")
)

// Note distribution.
const (
	clueNotes     = 11
	secretNotes   = 2
	combinedNotes = 1
	notInNotes    = 6
	lookInNotes   = 4
	cluesPerNote  = 2
	// totalNotes counts the money and trapdoor notes too.
	totalNotes = 1 + clueNotes + 1 + secretNotes + combinedNotes + notInNotes + lookInNotes
)

// content is the static material a board is built from.
type content struct {
	items         []models.Card
	people        []models.Card
	furniture     []*models.Furniture
	roomTemplates []models.RoomTemplate
	roomCodes     []int
}

func defaultContent() content {
	return content{
		items:         models.ItemCards(),
		people:        models.PeopleCards(),
		furniture:     models.FurnitureCatalog(),
		roomTemplates: models.RoomTemplates(),
		roomCodes:     models.RoomCodes(),
	}
}

// Game owns the seeded stream and every entity of one board.
type Game struct {
	logger *slog.Logger
	rng    *random.Source

	items           []models.Card
	people          []models.Card
	furniture       []*models.Furniture
	furnitureByCode map[int]*models.Furniture
	rooms           []*models.Room
	roomsByCode     map[int]*models.Room
	cluesFound      int
}

// New builds the board for seed. An empty seed is replaced with a freshly generated one.
//
// The same seed always yields the same room codes, furniture placement and notes.
func New(seed string, logger *slog.Logger) (*Game, error) {
	return newWithContent(seed, logger, defaultContent())
}

func newWithContent(seed string, logger *slog.Logger, c content) (*Game, error) {
	var err error
	if seed == "" {
		if seed, err = random.Seed(); err != nil {
			return nil, errors.Wrap(err, "generate seed")
		}
	}

	g := &Game{
		logger:          logger.With("source", "Game"),
		rng:             random.NewSource(seed),
		items:           c.items,
		people:          c.people,
		furniture:       c.furniture,
		furnitureByCode: make(map[int]*models.Furniture, len(c.furniture)),
		roomsByCode:     make(map[int]*models.Room, len(c.roomCodes)),
	}
	for _, f := range g.furniture {
		g.furnitureByCode[f.Code] = f
	}

	if err = g.buildRooms(c.roomTemplates, c.roomCodes); err != nil {
		return nil, errors.Wrap(err, "build rooms", slog.String("seed", seed))
	}
	if err = g.furnishRooms(); err != nil {
		return nil, errors.Wrap(err, "furnish rooms", slog.String("seed", seed))
	}
	if err = g.hideNotes(); err != nil {
		return nil, errors.Wrap(err, "hide notes", slog.String("seed", seed))
	}

	g.logger.LogAttrs(context.Background(), slog.LevelDebug, "game created", slog.String("seed", seed))
	return g, nil
}

func (g *Game) buildRooms(templates []models.RoomTemplate, roomCodes []int) error {
	codes := slices.Clone(roomCodes)
	random.Shuffle(g.rng, codes)

	if len(templates) != len(codes) {
		return errors.Wrap(ErrInconsistentRooms, "check room tables",
			slog.Int("rooms", len(templates)), slog.Int("codes", len(codes)))
	}

	g.rooms = make([]*models.Room, len(templates))
	for i, tmpl := range templates {
		room := models.NewRoom(tmpl.Name, tmpl.FurnitureCodes, codes[i])
		g.rooms[i] = room
		g.roomsByCode[room.Code] = room
	}
	return nil
}

// furnishRooms deals the furniture not placed by the room templates round-robin into rooms with capacity.
func (g *Game) furnishRooms() error {
	placed := map[int]bool{}
	for _, room := range g.rooms {
		for _, code := range room.FurnitureCodes {
			placed[code] = true
		}
	}
	remaining := make([]int, 0, len(g.furniture))
	for _, f := range g.furniture {
		if !placed[f.Code] {
			remaining = append(remaining, f.Code)
		}
	}

	random.Shuffle(g.rng, remaining)
	random.Shuffle(g.rng, g.rooms)

	for len(remaining) > 0 {
		dealt := false
		for _, room := range g.rooms {
			if len(room.FurnitureCodes) < models.MaxFurniturePerRoom && len(remaining) > 0 {
				room.FurnitureCodes = append(room.FurnitureCodes, remaining[len(remaining)-1])
				remaining = remaining[:len(remaining)-1]
				dealt = true
			}
		}
		if !dealt {
			return errors.Wrap(ErrRoomCapacity, "deal furniture", slog.Int("remaining", len(remaining)))
		}
	}
	return nil
}

// hideNotes hides the money, clues and hints. Every note goes to a different piece of furniture.
func (g *Game) hideNotes() error {
	if len(g.furniture) < totalNotes {
		return errors.Wrap(ErrNotEnoughFurniture, "count furniture",
			slog.Int("furniture", len(g.furniture)), slog.Int("notes", totalNotes))
	}

	pool := slices.Clone(g.furniture)
	random.Shuffle(g.rng, pool)
	pop := func() *models.Furniture {
		f := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		return f
	}

	money := pop()
	money.Note = &models.Note{
		Money:  true,
		Ask:    true,
		Item:   g.chooseCard(g.items),
		Person: g.chooseCard(g.people),
	}

	nonMoneyFurniture := slices.DeleteFunc(slices.Clone(g.furniture), func(f *models.Furniture) bool {
		return f == money
	})
	moneyRoom, _ := g.roomContaining(money.Code)
	nonMoneyRooms := slices.DeleteFunc(slices.Clone(g.rooms), func(r *models.Room) bool {
		return r == moneyRoom
	})

	clueFurniture := make([]*models.Furniture, 0, clueNotes)
	for range clueNotes {
		f := pop()
		f.Note = &models.Note{Clue: cluesPerNote}
		clueFurniture = append(clueFurniture, f)
	}

	pop().Note = &models.Note{Trapdoor: true}

	for range secretNotes {
		note := &models.Note{Ask: true}
		if g.rng.Float64() < 0.5 { //nolint:mnd // coin flip
			note.Item = g.chooseCard(g.items)
		} else {
			note.Person = g.chooseCard(g.people)
		}
		if room, ok := random.Choice(g.rng, nonMoneyRooms); ok {
			note.Secret = fmt.Sprintf("The money is not in the %s.", room.Name)
		}
		pop().Note = note
	}

	for range combinedNotes {
		pop().Note = &models.Note{
			Ask:    true,
			Item:   g.chooseCard(g.items),
			Person: g.chooseCard(g.people),
			Clue:   cluesPerNote,
		}
	}

	for range notInNotes {
		notIn, _ := random.Choice(g.rng, nonMoneyFurniture)
		pop().Note = &models.Note{NotIn: notIn}
	}

	for range lookInNotes {
		lookIn, _ := random.Choice(g.rng, clueFurniture)
		pop().Note = &models.Note{LookIn: lookIn}
	}

	return nil
}

func (g *Game) chooseCard(cards []models.Card) *models.Card {
	card, ok := random.Choice(g.rng, cards)
	if !ok {
		return nil
	}
	return &card
}

func (g *Game) roomContaining(furnitureCode int) (*models.Room, bool) {
	for _, room := range g.rooms {
		if room.ContainsFurniture(furnitureCode) {
			return room, true
		}
	}
	return nil, false
}

// LockRooms locks one or two rooms chosen at random, never the entrance, and returns their codes.
func (g *Game) LockRooms() []int {
	candidates := make([]int, 0, len(g.rooms))
	for _, room := range g.rooms {
		if room.Code != models.EntranceRoomCode {
			candidates = append(candidates, room.Code)
		}
	}

	count := int(g.rng.Float64()*2) + 1 //nolint:mnd // one or two rooms
	locked := random.Sample(g.rng, candidates, count)
	for _, code := range locked {
		g.roomsByCode[code].Locked = true
	}
	g.logger.LogAttrs(context.Background(), slog.LevelDebug, "rooms locked", slog.Any("codes", locked))
	return locked
}

// Seed returns the seed the board was built from.
func (g *Game) Seed() string {
	return g.rng.Seed()
}

// CluesFound returns how many clues have been found in this game.
func (g *Game) CluesFound() int {
	return g.cluesFound
}

// Items returns the item card pool.
func (g *Game) Items() []models.Card {
	return slices.Clone(g.items)
}

// People returns the people card pool.
func (g *Game) People() []models.Card {
	return slices.Clone(g.people)
}

// Furniture returns every piece of furniture ordered by catalog position. The pieces are shared with
// the game.
func (g *Game) Furniture() []*models.Furniture {
	return slices.Clone(g.furniture)
}

// Rooms returns the rooms in their furnishing order. The rooms are shared with the game.
func (g *Game) Rooms() []*models.Room {
	return slices.Clone(g.rooms)
}

// Room looks up a room by its code.
func (g *Game) Room(code int) (*models.Room, bool) {
	room, ok := g.roomsByCode[code]
	return room, ok
}

// FurnitureByCode looks up a piece of furniture by its code.
func (g *Game) FurnitureByCode(code int) (*models.Furniture, bool) {
	f, ok := g.furnitureByCode[code]
	return f, ok
}
