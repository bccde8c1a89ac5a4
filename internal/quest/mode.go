package quest

// Mode is the board lifecycle state.
type Mode string

const (
	ModeSetup Mode = "setup"
	ModePlay  Mode = "play"
)

// ParseMode parses a persisted mode value.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeSetup:
		return ModeSetup, true
	case ModePlay:
		return ModePlay, true
	default:
		return ModeSetup, false
	}
}

// Transition is an irreversible, confirmation-gated state change.
type Transition int

const (
	TransitionStart Transition = iota + 1 // Setup -> Play
	TransitionReset                       // any -> no quest
)

// String returns a human-readable name for the transition.
func (t Transition) String() string {
	switch t {
	case TransitionStart:
		return "start"
	case TransitionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Confirmation prompts shown to the user for each transition.
const (
	startPrompt = "Ready to start? The grid and goals are locked once the quest begins."
	resetPrompt = "This deletes your current bingo board. Are you sure?"
)

// Pending is a requested transition awaiting Confirm or Cancel.
// Only the most recently requested Pending can be confirmed.
type Pending struct {
	Transition Transition
	Message    string
	seq        uint64
}
