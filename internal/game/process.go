package game

// Action names the state machine a Process belongs to.
type Action string

const (
	ActionExploreRoom      Action = "explore-room"
	ActionExploreFurniture Action = "explore-furniture"
)

// State is the resumption point of a state machine. The zero value restarts a machine at StateBegin.
type State string

// States shared by both machines.
const (
	StateBegin  State = "begin"
	StateFinish State = "finish"
)

// Explore-room states.
const (
	StateCheckLockedRoom State = "check-locked-room"
	StateListFurniture   State = "list-furniture"
)

// Explore-furniture states.
const (
	StateCheckNoteItem        State = "check-note-item"
	StateCheckNoteItemInput   State = "check-note-item-input"
	StateCheckNotePerson      State = "check-note-person"
	StateCheckNotePersonInput State = "check-note-person-input"
	StateCheckNoteClue        State = "check-note-clue"
	StateCheckNoteSecret      State = "check-note-secret"
	StateCheckNoteSecretInput State = "check-note-secret-input"
	StateCheckNoteLookIn      State = "check-note-look-in"
	StateCheckNoteNotIn       State = "check-note-not-in"
	StateCheckNoteMoney       State = "check-note-money"
	StateBaseCase             State = "base-case"
)

// Status summarises a State for clients that only need to know whether to keep calling.
type Status string

const (
	StatusBegin    Status = "begin"
	StatusContinue Status = "continue"
	StatusFinish   Status = "finish"
)

// Process is the continuation token a client echoes back to resume a state machine.
type Process struct {
	Action Action `json:"action"`
	PID    State  `json:"pid"`
	Status Status `json:"status"`
}

// NewProcess returns the token for action resumed at pid, with the status derived from pid.
func NewProcess(action Action, pid State) Process {
	if pid == "" {
		pid = StateBegin
	}
	return Process{
		Action: action,
		PID:    pid,
		Status: statusOf(pid),
	}
}

func statusOf(pid State) Status {
	switch pid { //nolint:exhaustive // every other state continues
	case StateBegin:
		return StatusBegin
	case StateFinish:
		return StatusFinish
	default:
		return StatusContinue
	}
}

// PromptKind tells the client how to render a Prompt.
type PromptKind string

const (
	// PromptMessage is text for display.
	PromptMessage PromptKind = "message"
	// PromptSound is a sound asset path relative to the audio assets directory.
	PromptSound PromptKind = "sound"
)

// Prompt is one entry of the ordered output of a step.
type Prompt struct {
	Kind  PromptKind `json:"kind"`
	Value string     `json:"value"`
}

// Result is the output of a single state machine step.
type Result struct {
	Process Process  `json:"process"`
	Prompts []Prompt `json:"uiPrompts"`
}

func newResult(action Action, pid State) *Result {
	return &Result{
		Process: NewProcess(action, pid),
		Prompts: []Prompt{},
	}
}

func (r *Result) moveTo(pid State) {
	r.Process = NewProcess(r.Process.Action, pid)
}

func (r *Result) message(text string) {
	r.Prompts = append(r.Prompts, Prompt{Kind: PromptMessage, Value: text})
}

func (r *Result) sound(relativePath string) {
	r.Prompts = append(r.Prompts, Prompt{Kind: PromptSound, Value: relativePath})
}

// Messages returns the text prompts in order.
func (r *Result) Messages() []string {
	return r.values(PromptMessage)
}

// Sounds returns the sound prompts in order.
func (r *Result) Sounds() []string {
	return r.values(PromptSound)
}

func (r *Result) values(kind PromptKind) []string {
	out := []string{}
	for _, p := range r.Prompts {
		if p.Kind == kind {
			out = append(out, p.Value)
		}
	}
	return out
}

// affirmative reports whether the player answered yes.
func affirmative(userInput string) bool {
	return userInput == "y" || userInput == "Y"
}
