// Package session keeps the games of many concurrent players in memory and serializes the calls made to
// each of them.
package session

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrGameNotFound is returned for game IDs the store does not know.
	ErrGameNotFound = errors.NewSentinel("game not found")
	// ErrTooManyGames is returned by Create when the store is full.
	ErrTooManyGames = errors.NewSentinel("too many games")
)

// entry guards one game. A game runs only one state machine step at a time.
type entry struct {
	mu         sync.Mutex
	id         string
	game       *game.Game
	lastAccess atomic.Int64 // Unix nanoseconds of the latest call
}

// Store is an in-memory registry of games keyed by game ID. It is safe for concurrent use.
type Store struct {
	logger     *slog.Logger
	gameLogger *slog.Logger
	mu         sync.RWMutex
	games      map[string]*entry
	maxGames   int
	newID      func() string
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithMaxGames bounds how many games the store keeps. Zero means no limit.
func WithMaxGames(n int) Option {
	return func(s *Store) {
		s.maxGames = n
	}
}

// WithIDGenerator replaces the random UUID game IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithClock replaces time.Now for the idle bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		logger:     logger.With("source", "SessionStore"),
		gameLogger: logger,
		mu:         sync.RWMutex{},
		games:      make(map[string]*entry),
		maxGames:   0,
		newID: func() string {
			return uuid.New().String()
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a game for seed and registers it under a new ID. An empty seed gets a generated one.
// With lockRooms one or two rooms start locked. A non-empty replaceID names a game that the new one
// replaces; it does not count against the limit and is removed once the new game is registered.
func (s *Store) Create(ctx context.Context, seed string, lockRooms bool, replaceID string) (Summary, error) {
	g, err := game.New(seed, s.gameLogger)
	if err != nil {
		return Summary{}, errors.Wrap(err, "new game")
	}
	if lockRooms {
		g.LockRooms()
	}

	e := &entry{mu: sync.Mutex{}, id: s.newID(), game: g, lastAccess: atomic.Int64{}}
	e.lastAccess.Store(s.now().UnixNano())

	s.mu.Lock()
	_, replacing := s.games[replaceID]
	count := len(s.games)
	if replacing {
		count--
	}
	if s.maxGames > 0 && count >= s.maxGames {
		s.mu.Unlock()
		return Summary{}, errors.Wrap(ErrTooManyGames, "register game", slog.Int("maxGames", s.maxGames))
	}
	if _, exists := s.games[e.id]; exists {
		s.mu.Unlock()
		return Summary{}, errors.New("game ID already in use", slog.String("gameID", e.id))
	}
	if replacing {
		delete(s.games, replaceID)
	}
	s.games[e.id] = e
	s.mu.Unlock()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "game created",
		slog.String("gameID", e.id), slog.String("seed", g.Seed()), slog.Bool("lockRooms", lockRooms))
	if replacing {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "game replaced",
			slog.String("gameID", replaceID), slog.String("replacedBy", e.id))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return summarize(e), nil
}

func (s *Store) get(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.games[id]
	if !ok {
		return nil, errors.Wrap(ErrGameNotFound, "look up game", slog.String("gameID", id))
	}
	return e, nil
}

// with runs fn while holding the lock of the game with id.
func (s *Store) with(id string, fn func(e *entry)) error {
	e, err := s.get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastAccess.Store(s.now().UnixNano())
	fn(e)
	return nil
}

// Summary returns the public view of the game with id.
func (s *Store) Summary(id string) (Summary, error) {
	var summary Summary
	err := s.with(id, func(e *entry) {
		summary = summarize(e)
	})
	return summary, err
}

// ExploreRoom runs one explore-room step of the game with id.
func (s *Store) ExploreRoom(
	ctx context.Context,
	id string,
	process game.Process,
	roomCode int,
	userInput string,
) (game.Result, error) {
	var result game.Result
	err := s.with(id, func(e *entry) {
		result = e.game.ExploreRoom(process, roomCode, userInput)
	})
	if err != nil {
		return game.Result{}, err
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "explored room",
		slog.String("gameID", id), slog.Int("roomCode", roomCode), slog.String("pid", string(result.Process.PID)))
	return result, nil
}

// ExploreFurniture runs one explore-furniture call of the game with id.
func (s *Store) ExploreFurniture(
	ctx context.Context,
	id string,
	process game.Process,
	furnitureCode int,
	userInput string,
) (game.Result, error) {
	var result game.Result
	err := s.with(id, func(e *entry) {
		result = e.game.ExploreFurniture(process, furnitureCode, userInput)
	})
	if err != nil {
		return game.Result{}, err
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "explored furniture",
		slog.String("gameID", id), slog.Int("furnitureCode", furnitureCode),
		slog.String("pid", string(result.Process.PID)))
	return result, nil
}

// Delete forgets the game with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return errors.Wrap(ErrGameNotFound, "delete game", slog.String("gameID", id))
	}
	delete(s.games, id)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "game deleted", slog.String("gameID", id))
	return nil
}

// Len returns how many games are registered.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// RemoveIdle removes the games that nobody has called for longer than maxIdle and returns how many went.
func (s *Store) RemoveIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle).UnixNano()

	s.mu.Lock()
	removed := 0
	for id, e := range s.games {
		if e.lastAccess.Load() < cutoff {
			delete(s.games, id)
			removed++
		}
	}
	remaining := len(s.games)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "removed idle games",
			slog.Int("removed", removed), slog.Int("remaining", remaining), slog.Duration("maxIdle", maxIdle))
	}
	return removed
}

// Cleanup calls RemoveIdle every interval until ctx is cancelled.
func (s *Store) Cleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RemoveIdle(ctx, maxIdle)
		}
	}
}
