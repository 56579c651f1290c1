package game

import (
	"context"
	"fmt"
	"github.com/myrjola/findmoney/internal/models"
	"log/slog"
)

// cluesBeforeTaking is how many clues can be found before players start taking clues from each other.
const cluesBeforeTaking = 10

// ExploreFurniture runs the explore-furniture machine for the furniture with furnitureCode.
//
// The machine advances through every state that needs no answer within one call and stops when it waits
// for userInput or finishes. A zero furnitureCode means no furniture was given.
func (g *Game) ExploreFurniture(process Process, furnitureCode int, userInput string) Result {
	pid := process.PID
	if process.Action != "" && process.Action != ActionExploreFurniture {
		pid = StateBegin
	}
	result := newResult(ActionExploreFurniture, pid)

	if furnitureCode == 0 {
		result.message("Invalid request. A furniture number is required.")
		result.moveTo(StateBegin)
		return *result
	}
	furniture, ok := g.furnitureByCode[furnitureCode]
	if !ok {
		result.message("Invalid request. Furniture number not found.")
		result.moveTo(StateBegin)
		return *result
	}

	note := furniture.Note
	if note == nil {
		// Later states treat every facet as absent.
		note = &models.Note{}
	}
	s := furnitureStep{
		game:      g,
		furniture: furniture,
		note:      note,
		result:    result,
		userInput: userInput,
	}

	state := result.Process.PID
	for {
		next, wait, known := s.step(state)
		if !known {
			g.logger.LogAttrs(context.Background(), slog.LevelWarn, "using fallback result",
				slog.String("action", string(ActionExploreFurniture)), slog.String("pid", string(state)),
				slog.Int("furnitureCode", furnitureCode))
			return *result
		}
		result.moveTo(next)
		if wait {
			return *result
		}
		state = next
	}
}

// furnitureStep holds what one ExploreFurniture call works on.
type furnitureStep struct {
	game      *Game
	furniture *models.Furniture
	note      *models.Note
	result    *Result
	userInput string
	// revealed is set once a look-in or not-in hint is shown.
	revealed bool
}

// step runs state and returns the next state. wait stops the call, either to read the next answer or
// because the machine finished. known is false for states this machine does not have.
func (s *furnitureStep) step(state State) (next State, wait bool, known bool) {
	r := s.result
	n := s.note

	switch state { //nolint:exhaustive // room states are unknown here
	case StateBegin:
		r.message(s.furniture.String())
		r.sound(s.furniture.Filename)
		switch {
		case s.furniture.Note == nil:
			s.noClue()
			return StateFinish, true, true
		case n.Trapdoor:
			r.message("Oops! A trapdoor! Go to the entrance.")
			r.sound("trapdoor.wav")
			return StateFinish, true, true
		case n.Ask && n.Item != nil:
			return StateCheckNoteItem, false, true
		case n.Ask && n.Person != nil:
			return StateCheckNotePerson, false, true
		default:
			return StateCheckNoteClue, false, true
		}

	case StateCheckNoteItem:
		if n.Item == nil {
			return StateCheckNotePerson, false, true
		}
		r.message(fmt.Sprintf("Do you have the %s?", n.Item.Name))
		r.sound("ask_item.wav")
		r.sound(n.Item.Filename)
		r.message("y/n: ")
		return StateCheckNoteItemInput, true, true

	case StateCheckNoteItemInput:
		if !affirmative(s.userInput) {
			s.sorry()
			return StateFinish, true, true
		}
		if n.Person != nil {
			return StateCheckNotePerson, false, true
		}
		return StateCheckNoteClue, false, true

	case StateCheckNotePerson:
		if n.Person == nil {
			return StateCheckNoteClue, false, true
		}
		r.message(fmt.Sprintf("Is the %s with you?", n.Person.Name))
		r.sound("ask_person_1.wav")
		r.sound(n.Person.Filename)
		r.sound("ask_person_2.wav")
		r.message("y/n: ")
		return StateCheckNotePersonInput, true, true

	case StateCheckNotePersonInput:
		if !affirmative(s.userInput) {
			s.sorry()
			return StateFinish, true, true
		}
		return StateCheckNoteClue, false, true

	case StateCheckNoteClue:
		if n.Clue <= 0 {
			return StateCheckNoteSecret, false, true
		}
		if s.game.cluesFound < cluesBeforeTaking {
			r.message("You found a clue!")
			r.sound("clue_found.wav")
		} else {
			r.message("Take a clue from another player.")
			r.sound("clue_take.wav")
		}
		s.game.cluesFound++
		n.Clue--
		return StateFinish, true, true

	case StateCheckNoteSecret:
		if n.Secret == "" {
			return StateCheckNoteLookIn, false, true
		}
		r.message("***[SECRET MESSAGE]***")
		r.sound("secret.wav")
		r.message("Press Enter to view.")
		return StateCheckNoteSecretInput, true, true

	case StateCheckNoteSecretInput:
		if n.Secret == "" {
			return StateCheckNoteLookIn, false, true
		}
		r.message(n.Secret)
		return StateFinish, true, true

	case StateCheckNoteLookIn:
		if n.LookIn != nil {
			r.message(fmt.Sprintf("Look in the %s for a clue.", n.LookIn.Name))
			r.sound("hint_look_1.wav")
			r.sound(n.LookIn.Filename)
			r.sound("hint_look_2.wav")
			s.revealed = true
		}
		return StateCheckNoteNotIn, false, true

	case StateCheckNoteNotIn:
		if n.NotIn != nil {
			r.message(fmt.Sprintf("The money is not in the %s.", n.NotIn.Name))
			r.sound("hint_not_in.wav")
			r.sound(n.NotIn.Filename)
			s.revealed = true
		}
		return StateCheckNoteMoney, false, true

	case StateCheckNoteMoney:
		if !n.Money {
			return StateBaseCase, false, true
		}
		r.message("You found the money! You WIN!")
		r.sound("win.wav")
		return StateFinish, true, true

	case StateBaseCase:
		if !s.revealed {
			s.noClue()
		}
		return StateFinish, true, true

	case StateFinish:
		return StateFinish, true, true

	default:
		return state, true, false
	}
}

func (s *furnitureStep) noClue() {
	s.result.message("Sorry. No clue here.")
	s.result.sound("clue_none.wav")
}

func (s *furnitureStep) sorry() {
	s.result.message("Sorry.")
	s.result.sound("sorry.wav")
}
