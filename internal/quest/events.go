package quest

// Event is emitted by the Engine after a state change.
type Event interface {
	questEvent()
}

// Listener receives engine events synchronously, in emission order.
type Listener func(Event)

// LinesIncreased fires when a toggle raises the completed line count.
type LinesIncreased struct {
	Previous int
	Current  int
	Lines    []Line
}

func (LinesIncreased) questEvent() {}

// RewardUnlocked fires when the line count goes from zero to positive.
type RewardUnlocked struct {
	Reward string
	Lines  int
}

func (RewardUnlocked) questEvent() {}

// RewardClaimed fires exactly once per quest, on the claim that takes effect.
type RewardClaimed struct {
	Reward string
}

func (RewardClaimed) questEvent() {}

// BoardChanged fires after every committed mutation, including Reset.
type BoardChanged struct {
	Snapshot Snapshot
}

func (BoardChanged) questEvent() {}
