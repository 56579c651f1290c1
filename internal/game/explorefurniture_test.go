package game

import (
	"github.com/myrjola/findmoney/internal/models"
	"github.com/myrjola/findmoney/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"testing"
)

// withNote places note in the furniture with code and returns the furniture.
func withNote(t *testing.T, g *Game, code int, note *models.Note) *models.Furniture {
	t.Helper()
	f, ok := g.FurnitureByCode(code)
	require.True(t, ok)
	f.Note = note
	return f
}

func card(name string) *models.Card {
	c := models.NewCard(name)
	return &c
}

// play explores the furniture with code from the beginning, answering every question with answer.
func play(t *testing.T, g *Game, code int, answer string) []Result {
	t.Helper()
	results := []Result{g.ExploreFurniture(Process{}, code, "")}
	for i := 0; results[len(results)-1].Process.Status == StatusContinue; i++ {
		require.Less(t, i, 10, "the machine should finish")
		results = append(results, g.ExploreFurniture(results[len(results)-1].Process, code, answer))
	}
	return results
}

func TestExploreFurniture_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "missing code", code: 0, want: "Invalid request. A furniture number is required."},
		{name: "unknown code", code: 999, want: "Invalid request. Furniture number not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "abc")
			res := g.ExploreFurniture(NewProcess(ActionExploreFurniture, StateCheckNoteItemInput), tt.code, "y")
			require.Equal(t, []string{tt.want}, res.Messages())
			require.Equal(t, NewProcess(ActionExploreFurniture, StateBegin), res.Process)
		})
	}
}

func TestExploreFurniture_NoNote(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, nil)

	res := g.ExploreFurniture(Process{}, f.Code, "")
	require.Equal(t, []string{"214: Telescope", "Sorry. No clue here."}, res.Messages())
	require.Equal(t, []string{"furniture/telescope.wav", "clue_none.wav"}, res.Sounds())
	require.Equal(t, Process{Action: ActionExploreFurniture, PID: StateFinish, Status: StatusFinish}, res.Process)
	require.Equal(t, 0, g.CluesFound())
}

func TestExploreFurniture_Trapdoor(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Trapdoor: true})

	res := g.ExploreFurniture(Process{}, f.Code, "")
	require.Equal(t, []string{f.String(), "Oops! A trapdoor! Go to the entrance."}, res.Messages())
	require.Equal(t, []string{f.Filename, "trapdoor.wav"}, res.Sounds())
	require.Equal(t, StateFinish, res.Process.PID)
}

func TestExploreFurniture_ItemDeclined(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Ask: true, Item: card("Tape"), Clue: 2})

	res := g.ExploreFurniture(Process{}, f.Code, "")
	require.Equal(t, []string{f.String(), "Do you have the Tape?", "y/n: "}, res.Messages())
	require.Equal(t, []string{f.Filename, "ask_item.wav", "items/tape.wav"}, res.Sounds())
	require.Equal(t, StateCheckNoteItemInput, res.Process.PID)
	require.Equal(t, StatusContinue, res.Process.Status)

	res = g.ExploreFurniture(res.Process, f.Code, "n")
	require.Equal(t, []string{"Sorry."}, res.Messages())
	require.Equal(t, []string{"sorry.wav"}, res.Sounds())
	require.Equal(t, StateFinish, res.Process.PID)
	require.Equal(t, 2, f.Note.Clue)
	require.Equal(t, 0, g.CluesFound())
}

func TestExploreFurniture_PersonDeclined(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Ask: true, Person: card("Maid"), Clue: 2})

	res := g.ExploreFurniture(Process{}, f.Code, "")
	require.Equal(t, []string{f.String(), "Is the Maid with you?", "y/n: "}, res.Messages())
	require.Equal(t, []string{f.Filename, "ask_person_1.wav", "items/maid.wav", "ask_person_2.wav"}, res.Sounds())
	require.Equal(t, StateCheckNotePersonInput, res.Process.PID)

	res = g.ExploreFurniture(res.Process, f.Code, "no")
	require.Equal(t, []string{"Sorry."}, res.Messages())
	require.Equal(t, StateFinish, res.Process.PID)
}

func TestExploreFurniture_Money(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Money: true, Ask: true, Item: card("Map"), Person: card("Butler")})

	results := play(t, g, f.Code, "y")
	require.Len(t, results, 3)
	require.Equal(t, StateCheckNoteItemInput, results[0].Process.PID)

	require.Equal(t, []string{"Is the Butler with you?", "y/n: "}, results[1].Messages())
	require.Equal(t, StateCheckNotePersonInput, results[1].Process.PID)

	require.Equal(t, []string{"You found the money! You WIN!"}, results[2].Messages())
	require.Equal(t, []string{"win.wav"}, results[2].Sounds())
	require.Equal(t, StateFinish, results[2].Process.PID)
}

func TestExploreFurniture_AnsweredButNothingElse(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Ask: true, Item: card("Letter")})

	results := play(t, g, f.Code, "Y")
	require.Len(t, results, 2)
	require.Equal(t, []string{"Sorry. No clue here."}, results[1].Messages())
	require.Equal(t, []string{"clue_none.wav"}, results[1].Sounds())
}

func TestExploreFurniture_Clues(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Clue: 2})

	for want := 1; want <= 2; want++ {
		res := g.ExploreFurniture(Process{}, f.Code, "")
		require.Equal(t, []string{f.String(), "You found a clue!"}, res.Messages())
		require.Equal(t, []string{f.Filename, "clue_found.wav"}, res.Sounds())
		require.Equal(t, StateFinish, res.Process.PID)
		require.Equal(t, want, g.CluesFound())
	}

	res := g.ExploreFurniture(Process{}, f.Code, "")
	require.Equal(t, []string{f.String(), "Sorry. No clue here."}, res.Messages())
	require.Equal(t, 2, g.CluesFound())
	require.Equal(t, 0, f.Note.Clue)
}

func TestExploreFurniture_CombinedClue(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, &models.Note{Ask: true, Item: card("Photos"), Person: card("Cook"), Clue: 2})

	results := play(t, g, f.Code, "y")
	require.Len(t, results, 3)
	require.Equal(t, []string{"You found a clue!"}, results[2].Messages())
	require.Equal(t, 1, g.CluesFound())
}

func TestExploreFurniture_TakeClueAfterTen(t *testing.T) {
	g := newTestGame(t, "abc")
	plain := []int{214, 221, 222, 223, 224}
	for _, code := range plain {
		withNote(t, g, code, &models.Note{Clue: 2})
	}
	for _, code := range plain {
		for range 2 {
			res := g.ExploreFurniture(Process{}, code, "")
			require.Equal(t, "You found a clue!", res.Messages()[1])
		}
	}
	require.Equal(t, 10, g.CluesFound())

	f := withNote(t, g, 231, &models.Note{Clue: 2})
	res := g.ExploreFurniture(Process{}, f.Code, "")
	require.Equal(t, []string{f.String(), "Take a clue from another player."}, res.Messages())
	require.Equal(t, []string{f.Filename, "clue_take.wav"}, res.Sounds())
	require.Equal(t, 11, g.CluesFound())
	require.Equal(t, 1, f.Note.Clue)
}

func TestExploreFurniture_Secret(t *testing.T) {
	g := newTestGame(t, "abc")
	secret := "The money is not in the Gym."
	f := withNote(t, g, 214, &models.Note{Ask: true, Item: card("Tape"), Secret: secret})

	res := g.ExploreFurniture(Process{}, f.Code, "")
	res = g.ExploreFurniture(res.Process, f.Code, "y")
	require.Equal(t, []string{"***[SECRET MESSAGE]***", "Press Enter to view."}, res.Messages())
	require.Equal(t, []string{"secret.wav"}, res.Sounds())
	require.Equal(t, StateCheckNoteSecretInput, res.Process.PID)

	res = g.ExploreFurniture(res.Process, f.Code, "")
	require.Equal(t, []string{secret}, res.Messages())
	require.Empty(t, res.Sounds())
	require.Equal(t, StateFinish, res.Process.PID)
}

func TestExploreFurniture_Hints(t *testing.T) {
	g := newTestGame(t, "abc")
	lamp, ok := g.FurnitureByCode(241)
	require.True(t, ok)
	rug, ok := g.FurnitureByCode(224)
	require.True(t, ok)

	tests := []struct {
		name       string
		note       *models.Note
		wantText   []string
		wantSounds []string
	}{
		{
			name:       "look in",
			note:       &models.Note{LookIn: lamp},
			wantText:   []string{"Look in the Lamp for a clue."},
			wantSounds: []string{"hint_look_1.wav", "furniture/lamp.wav", "hint_look_2.wav"},
		},
		{
			name:       "not in",
			note:       &models.Note{NotIn: rug},
			wantText:   []string{"The money is not in the Rug."},
			wantSounds: []string{"hint_not_in.wav", "furniture/rug.wav"},
		},
		{
			name:       "both",
			note:       &models.Note{LookIn: lamp, NotIn: rug},
			wantText:   []string{"Look in the Lamp for a clue.", "The money is not in the Rug."},
			wantSounds: []string{"hint_look_1.wav", "furniture/lamp.wav", "hint_look_2.wav", "hint_not_in.wav", "furniture/rug.wav"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := withNote(t, g, 214, tt.note)
			res := g.ExploreFurniture(Process{}, f.Code, "")
			require.Equal(t, append([]string{f.String()}, tt.wantText...), res.Messages())
			require.Equal(t, append([]string{f.Filename}, tt.wantSounds...), res.Sounds())
			require.Equal(t, StateFinish, res.Process.PID)
		})
	}
}

func TestExploreFurniture_FinishIsIdempotent(t *testing.T) {
	g := newTestGame(t, "abc")
	token := NewProcess(ActionExploreFurniture, StateFinish)
	for range 3 {
		res := g.ExploreFurniture(token, 214, "y")
		require.Equal(t, token, res.Process)
		require.Empty(t, res.Prompts)
	}
}

func TestExploreFurniture_UnknownState(t *testing.T) {
	logger, logs := testhelpers.NewBufferLogger()
	g, err := New("abc", logger)
	require.NoError(t, err)

	token := NewProcess(ActionExploreFurniture, StateCheckLockedRoom)
	res := g.ExploreFurniture(token, 214, "")
	require.Equal(t, token, res.Process)
	require.Empty(t, res.Prompts)
	require.Contains(t, logs.String(), "using fallback result")
}

func TestExploreFurniture_ForeignToken(t *testing.T) {
	g := newTestGame(t, "abc")
	f := withNote(t, g, 214, nil)

	res := g.ExploreFurniture(NewProcess(ActionExploreRoom, StateCheckLockedRoom), f.Code, "y")
	require.Equal(t, ActionExploreFurniture, res.Process.Action)
	require.Equal(t, []string{f.String(), "Sorry. No clue here."}, res.Messages())
}

func TestExploreFurniture_WholeBoard(t *testing.T) {
	for _, seed := range testSeeds {
		t.Run(seed, func(t *testing.T) {
			g := newTestGame(t, seed)
			wins := 0
			previous := 0
			for range 3 {
				for _, f := range g.Furniture() {
					for _, res := range play(t, g, f.Code, "y") {
						require.GreaterOrEqual(t, g.CluesFound(), previous)
						previous = g.CluesFound()
						for _, m := range res.Messages() {
							if m == "You found the money! You WIN!" {
								wins++
							}
						}
					}
				}
			}
			require.Equal(t, 24, g.CluesFound())
			require.Equal(t, 3, wins, "the money is found on every pass")
		})
	}
}
